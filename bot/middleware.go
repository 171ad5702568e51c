package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/Brawl345/channelgate/utils"
	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

// https://twin.sh/articles/35/how-to-add-colors-to-your-console-terminal-output-in-go
var (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	purple = "\033[35m"
	cyan   = "\033[36m"
)

func printUser(user *gotgbot.User) string {
	var sb strings.Builder
	sb.WriteString(bold)
	sb.WriteString(red)
	sb.WriteString(utils.FullName(user.FirstName, user.LastName))
	sb.WriteString(reset)

	if user.Username != "" {
		sb.WriteString(fmt.Sprintf(" %s(@%s)%s", red, user.Username, reset))
	}

	sb.WriteString(fmt.Sprintf(" %s[%d]%s", cyan, user.Id, reset))

	return sb.String()
}

func formatMessage(msg *gotgbot.Message) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s[%v]", cyan, utils.TimestampToTime(msg.Date).Format("15:04:05")))

	if msg.Chat.Title != "" {
		sb.WriteString(fmt.Sprintf(" %s:", msg.Chat.Title))
	}

	sb.WriteString(reset)

	if msg.From != nil {
		sb.WriteString(" ")
		sb.WriteString(printUser(msg.From))
	}

	sb.WriteString(fmt.Sprintf("%s >>> %s", cyan, reset))

	if text := utils.AnyText(msg); text != "" {
		sb.WriteString(text)
	} else {
		sb.WriteString(fmt.Sprintf("%s(no text)%s", purple, reset))
	}

	return sb.String()
}

func formatCallback(callback *gotgbot.CallbackQuery) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s[%v]%s ", cyan, time.Now().Format("15:04:05"), reset))
	sb.WriteString(printUser(&callback.From))
	sb.WriteString(fmt.Sprintf("%s >>> %s%s(CallbackQuery)%s ", cyan, reset, green, reset))

	if callback.Data != "" {
		sb.WriteString(fmt.Sprintf("%s%s%s", purple, callback.Data, reset))
	}

	return sb.String()
}

// PrintMessage writes a colored one-line summary of the update to stdout.
func PrintMessage(c *ext.Context) {
	var text string
	if c.Message != nil {
		text = formatMessage(c.Message)
	} else if c.CallbackQuery != nil {
		text = formatCallback(c.CallbackQuery)
	} else {
		text = fmt.Sprintf("%s>>> %s%sUnknown update type%s", cyan, reset, red, reset)
	}

	fmt.Println(text)
}

// OnError is the dispatcher error handler, errors are logged and the update
// is dropped.
func OnError(_ *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
	lg := log.Err(err)
	if ctx != nil && ctx.EffectiveUser != nil {
		lg = lg.Int64("user_id", ctx.EffectiveUser.Id)
	}
	lg.Msg("Error while processing update")
	return ext.DispatcherActionNoop
}
