package bot

import (
	"github.com/PaulSonOfLars/gotgbot/v2"
)

// Telegram implements gate.Platform and gate.Messenger on top of the Bot API.
type Telegram struct {
	bot *gotgbot.Bot
}

func NewTelegram(b *gotgbot.Bot) *Telegram {
	return &Telegram{
		bot: b,
	}
}

func (t *Telegram) ChatMemberStatus(chatID, userID int64) (string, error) {
	member, err := t.bot.GetChatMember(chatID, userID, nil)
	if err != nil {
		return "", err
	}
	return member.GetStatus(), nil
}

func (t *Telegram) ChatTitle(chatID int64) (string, error) {
	chat, err := t.bot.GetChat(chatID, nil)
	if err != nil {
		return "", err
	}
	return chat.Title, nil
}

func (t *Telegram) SendMessage(chatID int64, text string, markup *gotgbot.InlineKeyboardMarkup) (int64, error) {
	opts := &gotgbot.SendMessageOpts{
		ParseMode: gotgbot.ParseModeHTML,
		LinkPreviewOptions: &gotgbot.LinkPreviewOptions{
			IsDisabled: true,
		},
	}
	if markup != nil {
		opts.ReplyMarkup = *markup
	}

	msg, err := t.bot.SendMessage(chatID, text, opts)
	if err != nil {
		return 0, err
	}
	return msg.MessageId, nil
}

func (t *Telegram) EditMessage(chatID, messageID int64, text string, markup *gotgbot.InlineKeyboardMarkup) error {
	opts := &gotgbot.EditMessageTextOpts{
		ChatId:    chatID,
		MessageId: messageID,
		ParseMode: gotgbot.ParseModeHTML,
		LinkPreviewOptions: &gotgbot.LinkPreviewOptions{
			IsDisabled: true,
		},
	}
	if markup != nil {
		opts.ReplyMarkup = *markup
	}

	_, _, err := t.bot.EditMessageText(text, opts)
	return err
}

func (t *Telegram) AnswerCallback(callbackID, text string, showAlert bool) error {
	_, err := t.bot.AnswerCallbackQuery(callbackID, &gotgbot.AnswerCallbackQueryOpts{
		Text:      text,
		ShowAlert: showAlert,
	})
	return err
}
