package tgUtils

const (
	ChatMemberStatusCreator       = "creator"
	ChatMemberStatusAdministrator = "administrator"
	ChatMemberStatusMember        = "member"
	ChatMemberStatusRestricted    = "restricted"
	ChatMemberStatusLeft          = "left"
	ChatMemberStatusKicked        = "kicked"

	ErrBlockedByUser     = "Forbidden: bot was blocked by the user"
	ErrNotStartedByUser  = "Forbidden: bot can't initiate conversation with a user"
	ErrUserIsDeactivated = "Forbidden: user is deactivated"
	ErrChatNotFound      = "Bad Request: chat not found"
)
