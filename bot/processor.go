package bot

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Brawl345/channelgate/model"
	"github.com/Brawl345/channelgate/plugin"
	"github.com/Brawl345/channelgate/utils"
	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/rs/xid"
)

const errorText = "❌ An error occurred."

type (
	// Processor routes updates to the plugin handlers. It replaces the default
	// ext.Processor so handler matching stays regex based.
	Processor struct {
		plugins       []plugin.Plugin
		userService   model.UserService
		printMessages bool

		replies func(b *gotgbot.Bot) replier
		spawn   func(func())
	}

	// replier is everything the processor itself sends back to Telegram.
	replier interface {
		Reply(msg *gotgbot.Message, text string) error
		AnswerCallback(callback *gotgbot.CallbackQuery, opts *gotgbot.AnswerCallbackQueryOpts) error
	}

	botReplier struct {
		bot *gotgbot.Bot
	}
)

func (r botReplier) Reply(msg *gotgbot.Message, text string) error {
	_, err := msg.Reply(r.bot, text, utils.DefaultSendOptions())
	return err
}

func (r botReplier) AnswerCallback(callback *gotgbot.CallbackQuery, opts *gotgbot.AnswerCallbackQueryOpts) error {
	_, err := callback.Answer(r.bot, opts)
	return err
}

func NewProcessor(plugins []plugin.Plugin, userService model.UserService, printMessages bool) *Processor {
	return &Processor{
		plugins:       plugins,
		userService:   userService,
		printMessages: printMessages,
		replies: func(b *gotgbot.Bot) replier {
			return botReplier{bot: b}
		},
		spawn: func(f func()) {
			go f()
		},
	}
}

func (p *Processor) ProcessUpdate(_ *ext.Dispatcher, b *gotgbot.Bot, ctx *ext.Context) error {
	if p.printMessages {
		PrintMessage(ctx)
	}

	if ctx.Message != nil {
		return p.onMessage(b, ctx)
	}

	if ctx.CallbackQuery != nil {
		return p.onCallback(b, ctx)
	}

	return nil
}

func (p *Processor) onMessage(b *gotgbot.Bot, ctx *ext.Context) error {
	msg := ctx.EffectiveMessage
	if ctx.EffectiveUser == nil {
		return nil
	}

	if utils.IsPrivate(msg) {
		if err := p.userService.Create(ctx.EffectiveUser); err != nil {
			log.Err(err).
				Int64("user_id", ctx.EffectiveUser.Id).
				Msg("Failed to save user")
		}
	}

	text := utils.AnyText(msg)
	replies := p.replies(b)

	for _, plg := range p.plugins {
		plg := plg
		for _, h := range plg.Handlers(&b.User) {
			handler, ok := h.(*plugin.CommandHandler)
			if !ok {
				continue
			}

			if handler.PrivateOnly && !utils.IsPrivate(msg) {
				continue
			}

			matches := handler.Trigger.FindStringSubmatch(text)
			if len(matches) == 0 {
				continue
			}

			log.Debug().Msgf("Matched plugin '%s': %s", plg.Name(), handler.Trigger)

			if handler.AdminOnly && !utils.IsAdmin(ctx.EffectiveUser) {
				log.Debug().Msg("User is not an admin.")
				continue
			}

			namedMatches := namedSubmatches(handler.Trigger, matches)

			p.spawn(func() {
				defer func() {
					if r := recover(); r != nil {
						guid := xid.New().String()
						log.Err(errors.New("panic")).
							Str("guid", guid).
							Int64("chat_id", ctx.EffectiveChat.Id).
							Int64("user_id", ctx.EffectiveUser.Id).
							Str("text", text).
							Str("plugin", plg.Name()).
							Msgf("%s", r)
						_ = replies.Reply(msg, fmt.Sprintf("%s%s", errorText, utils.EmbedGUID(guid)))
					}
				}()
				err := handler.Run(b, plugin.GobotContext{
					Context:      ctx,
					Matches:      matches,
					NamedMatches: namedMatches,
				})
				if err != nil {
					guid := xid.New().String()
					log.Err(err).
						Str("guid", guid).
						Int64("chat_id", ctx.EffectiveChat.Id).
						Int64("user_id", ctx.EffectiveUser.Id).
						Str("text", text).
						Str("plugin", plg.Name()).
						Send()
					_ = replies.Reply(msg, fmt.Sprintf("%s%s", errorText, utils.EmbedGUID(guid)))
				}
			})
		}
	}

	return nil
}

func (p *Processor) onCallback(b *gotgbot.Bot, ctx *ext.Context) error {
	callback := ctx.CallbackQuery
	replies := p.replies(b)

	// Callbacks from messages older than 48h come without a message
	if callback.Data == "" || callback.Message == nil {
		return replies.AnswerCallback(callback, nil)
	}

	matched := false
	for _, plg := range p.plugins {
		plg := plg
		for _, h := range plg.Handlers(&b.User) {
			handler, ok := h.(*plugin.CallbackHandler)
			if !ok {
				continue
			}

			matches := handler.Trigger.FindStringSubmatch(callback.Data)
			if len(matches) == 0 {
				continue
			}

			log.Debug().Msgf("Matched plugin %s: %s", plg.Name(), handler.Trigger)

			if handler.AdminOnly && !utils.IsAdmin(&callback.From) {
				return replies.AnswerCallback(callback, &gotgbot.AnswerCallbackQueryOpts{
					Text:      "You are not a bot administrator.",
					ShowAlert: true,
				})
			}

			matched = true
			namedMatches := namedSubmatches(handler.Trigger, matches)

			p.spawn(func() {
				defer func() {
					if r := recover(); r != nil {
						log.Err(errors.New("panic")).
							Int64("user_id", callback.From.Id).
							Str("callback_data", callback.Data).
							Str("plugin", plg.Name()).
							Msgf("%s", r)
					}
				}()
				err := handler.Run(b, plugin.GobotContext{
					Context:      ctx,
					Matches:      matches,
					NamedMatches: namedMatches,
				})
				if err != nil {
					log.Err(err).
						Str("guid", xid.New().String()).
						Int64("user_id", callback.From.Id).
						Str("callback_data", callback.Data).
						Str("plugin", plg.Name()).
						Send()
				}
			})
		}
	}

	if !matched {
		log.Debug().
			Str("callback_data", callback.Data).
			Msg("No handler for callback")
		return replies.AnswerCallback(callback, nil)
	}

	return nil
}

func namedSubmatches(re *regexp.Regexp, matches []string) map[string]string {
	namedMatches := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(matches) {
			namedMatches[name] = matches[i]
		}
	}
	return namedMatches
}
