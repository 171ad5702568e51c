package gate

import "github.com/PaulSonOfLars/gotgbot/v2"

type (
	// Platform is the read side of the Bot API the gate needs.
	Platform interface {
		ChatMemberStatus(chatID, userID int64) (string, error)
		ChatTitle(chatID int64) (string, error)
	}

	// Messenger is the write side of the Bot API the gate needs. All texts are
	// HTML formatted.
	Messenger interface {
		SendMessage(chatID int64, text string, markup *gotgbot.InlineKeyboardMarkup) (int64, error)
		EditMessage(chatID, messageID int64, text string, markup *gotgbot.InlineKeyboardMarkup) error
		AnswerCallback(callbackID, text string, showAlert bool) error
	}
)
