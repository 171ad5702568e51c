package tgUtils

import (
	"errors"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

// Description returns the description of a Telegram API error or an empty
// string if err did not come from the Bot API.
func Description(err error) string {
	var telegramErr *gotgbot.TelegramError
	if errors.As(err, &telegramErr) {
		return telegramErr.Description
	}
	return ""
}

// IsUnreachable reports whether the user can't receive messages from the bot
// anymore (blocked, never started, deleted account).
func IsUnreachable(err error) bool {
	switch Description(err) {
	case ErrBlockedByUser, ErrNotStartedByUser, ErrUserIsDeactivated, ErrChatNotFound:
		return true
	default:
		return false
	}
}

// IsNotModified is returned by Telegram when an edit would not change anything,
// e.g. when the same keyboard is sent twice.
func IsNotModified(err error) bool {
	return strings.HasPrefix(Description(err), "Bad Request: message is not modified")
}
