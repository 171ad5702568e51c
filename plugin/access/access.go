package access

import (
	"fmt"
	"regexp"

	"github.com/Brawl345/channelgate/gate"
	"github.com/Brawl345/channelgate/plugin"
	"github.com/PaulSonOfLars/gotgbot/v2"
)

type Plugin struct {
	gate *gate.Gate
}

func New(g *gate.Gate) *Plugin {
	return &Plugin{
		gate: g,
	}
}

func (p *Plugin) Name() string {
	return "access"
}

func (p *Plugin) Commands() []gotgbot.BotCommand {
	return []gotgbot.BotCommand{
		{
			Command:     "start",
			Description: "Check whether you joined all required channels",
		},
	}
}

func (p *Plugin) Handlers(botInfo *gotgbot.User) []plugin.Handler {
	return []plugin.Handler{
		&plugin.CommandHandler{
			Trigger:     regexp.MustCompile(fmt.Sprintf(`(?i)^/start(?:@%s)?(?:\s.*)?$`, botInfo.Username)),
			HandlerFunc: p.onStart,
		},
		&plugin.CallbackHandler{
			Trigger:     regexp.MustCompile(fmt.Sprintf(`^%s$`, regexp.QuoteMeta(gate.CheckMembershipData))),
			HandlerFunc: p.onCheckMembership,
		},
	}
}

func (p *Plugin) onStart(_ *gotgbot.Bot, c plugin.GobotContext) error {
	return p.gate.Start(gate.StartRequest{
		UserID: c.EffectiveUser.Id,
		ChatID: c.EffectiveChat.Id,
	})
}

func (p *Plugin) onCheckMembership(_ *gotgbot.Bot, c plugin.GobotContext) error {
	callback := c.CallbackQuery
	return p.gate.Recheck(gate.RecheckRequest{
		UserID:     callback.From.Id,
		ChatID:     callback.Message.GetChat().Id,
		MessageID:  callback.Message.GetMessageId(),
		CallbackID: callback.Id,
	})
}
