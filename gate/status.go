package gate

import "github.com/Brawl345/channelgate/utils/tgUtils"

type MembershipStatus int

const (
	// StatusUnknown covers failed lookups and statuses we don't know. It is
	// never treated as joined.
	StatusUnknown MembershipStatus = iota
	StatusMember
	StatusLeft
	StatusKicked
)

func (s MembershipStatus) Joined() bool {
	return s == StatusMember
}

func (s MembershipStatus) String() string {
	switch s {
	case StatusMember:
		return "member"
	case StatusLeft:
		return "left"
	case StatusKicked:
		return "kicked"
	default:
		return "unknown"
	}
}

// ClassifyStatus maps the status field of a ChatMember object.
func ClassifyStatus(status string) MembershipStatus {
	switch status {
	case tgUtils.ChatMemberStatusLeft:
		return StatusLeft
	case tgUtils.ChatMemberStatusKicked:
		return StatusKicked
	case tgUtils.ChatMemberStatusCreator,
		tgUtils.ChatMemberStatusAdministrator,
		tgUtils.ChatMemberStatusMember,
		tgUtils.ChatMemberStatusRestricted:
		return StatusMember
	default:
		return StatusUnknown
	}
}
