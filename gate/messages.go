package gate

import (
	"fmt"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

// CheckMembershipData is the callback data of the "I've Joined" button.
const CheckMembershipData = "check_membership"

const (
	grantedText        = "🎉 <b>Access Granted!</b>\nYou're verified and ready to go!"
	recheckGrantedText = "🎉 <b>Access Granted!</b>\nYou're verified now."
	verifiedNotice     = "✅ Verified!"
	stillMissingNotice = "🚫 Still not joined all channels."
	revokedText        = "🚨 <b>Warning:</b> You left a required channel!\n\n" +
		"🔒 Access restricted. Please rejoin to continue."
)

func restrictedText(remaining int) string {
	return fmt.Sprintf(
		"<b>🚫 Restricted Access</b>\n\n"+
			"To use this bot, please join the required channels below.\n"+
			"📎 Remaining: <code>%d</code> channel(s)\n\n"+
			"<i>After joining, click the button below.</i>",
		remaining,
	)
}

func missingText(remaining int) string {
	return fmt.Sprintf(
		"<b>❌ You're still missing some channels</b>\n\n"+
			"📎 Remaining: <code>%d</code> channel(s)\n\n"+
			"<i>Join them and try again.</i>",
		remaining,
	)
}

// JoinKeyboard has one URL button per channel followed by the recheck button.
func (o *Oracle) JoinKeyboard(unjoined []Channel) *gotgbot.InlineKeyboardMarkup {
	rows := make([][]gotgbot.InlineKeyboardButton, 0, len(unjoined)+1)
	for _, ch := range unjoined {
		rows = append(rows, []gotgbot.InlineKeyboardButton{
			{
				Text: fmt.Sprintf("📡 Join %s", o.DisplayName(ch)),
				Url:  ch.JoinURL(),
			},
		})
	}

	rows = append(rows, []gotgbot.InlineKeyboardButton{
		{
			Text:         "✅ I've Joined",
			CallbackData: CheckMembershipData,
		},
	})

	return &gotgbot.InlineKeyboardMarkup{InlineKeyboard: rows}
}
