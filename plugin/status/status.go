package status

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Brawl345/channelgate/gate"
	"github.com/Brawl345/channelgate/logger"
	"github.com/Brawl345/channelgate/model"
	"github.com/Brawl345/channelgate/plugin"
	"github.com/Brawl345/channelgate/utils"
	"github.com/PaulSonOfLars/gotgbot/v2"
)

var log = logger.New("status")

var events = []struct {
	event model.VerificationEvent
	label string
}{
	{model.EventGranted, "Granted"},
	{model.EventDenied, "Denied"},
	{model.EventRevoked, "Revoked"},
}

type Plugin struct {
	gate                *gate.Gate
	monitor             *gate.Monitor
	verificationService model.VerificationService
}

func New(g *gate.Gate, monitor *gate.Monitor, verificationService model.VerificationService) *Plugin {
	return &Plugin{
		gate:                g,
		monitor:             monitor,
		verificationService: verificationService,
	}
}

func (p *Plugin) Name() string {
	return "status"
}

func (p *Plugin) Commands() []gotgbot.BotCommand {
	return nil // Because it's a superuser command
}

func (p *Plugin) Handlers(botInfo *gotgbot.User) []plugin.Handler {
	return []plugin.Handler{
		&plugin.CommandHandler{
			Trigger:     regexp.MustCompile(fmt.Sprintf(`(?i)^/gatestatus(?:@%s)?$`, botInfo.Username)),
			HandlerFunc: p.onStatus,
			AdminOnly:   true,
		},
	}
}

func (p *Plugin) onStatus(b *gotgbot.Bot, c plugin.GobotContext) error {
	_, err := c.EffectiveMessage.Reply(b, p.render(time.Now()), utils.DefaultSendOptions())
	return err
}

func (p *Plugin) render(now time.Time) string {
	var sb strings.Builder

	sb.WriteString("<b>🔐 Channel gate</b>\n")
	sb.WriteString(fmt.Sprintf("Verified users: <b>%s</b>\n", utils.FormatThousand(p.gate.Verified().Len())))
	sb.WriteString(fmt.Sprintf("Sweep interval: <code>%s</code>\n", utils.HumanizeDuration(p.monitor.Interval())))

	since := now.Add(-utils.Day)
	for _, e := range events {
		count, err := p.verificationService.CountSince(e.event, since)
		if err != nil {
			log.Err(err).
				Str("event", string(e.event)).
				Msg("Failed to count verification events")
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (24h): %s\n", e.label, utils.FormatThousand(count)))
	}

	sb.WriteString("\n<b>Channels:</b>\n")
	for _, ch := range p.gate.Registry().Channels() {
		sb.WriteString(fmt.Sprintf(
			"• <a href=\"%s\">%s</a> (<code>%d</code>)\n",
			ch.JoinURL(),
			utils.Escape(p.gate.Oracle().DisplayName(ch)),
			ch.ID,
		))
	}

	return sb.String()
}
