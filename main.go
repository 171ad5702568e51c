package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Brawl345/channelgate/bot"
	"github.com/Brawl345/channelgate/config"
	"github.com/Brawl345/channelgate/gate"
	"github.com/Brawl345/channelgate/logger"
	"github.com/Brawl345/channelgate/model"
	"github.com/Brawl345/channelgate/model/sql"
	"github.com/Brawl345/channelgate/plugin"
	"github.com/Brawl345/channelgate/plugin/access"
	"github.com/Brawl345/channelgate/plugin/status"
	"github.com/Brawl345/channelgate/utils"
	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	_ "github.com/joho/godotenv/autoload"
)

var log = logger.New("main")

func main() {
	versionInfo, err := utils.ReadVersionInfo()
	if err == nil {
		log.Info().Msgf("Channelgate-%s, %v", versionInfo.Revision, versionInfo.LastCommit)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if cfg.SweepInterval < utils.MinSweepInterval {
		log.Warn().
			Dur("interval", cfg.SweepInterval).
			Msg("Sweep interval is very short and will likely hit Telegram rate limits")
	}

	channels, err := config.LoadChannels(cfg.ChannelsFile)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Msgf("Loaded %d required channel(s)", len(channels))

	var (
		userService         model.UserService         = model.NopUserService{}
		verificationService model.VerificationService = model.NopVerificationService{}
	)

	if cfg.MySQL.Enabled() {
		db, err := sql.New(cfg.MySQL.DSN(), cfg.IgnoreMigration)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer db.Close()

		log.Info().Msg("Database connection established")
		userService = sql.NewUserService(db)
		verificationService = sql.NewVerificationService(db)
	} else {
		log.Info().Msg("No database configured, verification history is not recorded")
	}

	b, err := gotgbot.NewBot(cfg.BotToken, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}
	log.Info().Msgf("Logged in as @%s (%d)", b.Username, b.Id)

	telegram := bot.NewTelegram(b)
	g := gate.New(gate.Options{
		Registry:      gate.NewRegistry(channels),
		Platform:      telegram,
		Messenger:     telegram,
		Verifications: verificationService,
		TitleCacheTTL: cfg.TitleCacheTTL,
	})
	monitor := gate.NewMonitor(g, cfg.SweepInterval)

	plugins := []plugin.Plugin{
		access.New(g),
		status.New(g, monitor, verificationService),
	}

	var commands []gotgbot.BotCommand
	for i, plg := range plugins {
		log.Info().Msgf("Registering plugin (%d/%d): %s", i+1, len(plugins), plg.Name())
		commands = append(commands, plg.Commands()...)
	}

	if _, err := b.SetMyCommands(commands, nil); err != nil {
		log.Err(err).Msg("Failed to set commands")
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Processor:   bot.NewProcessor(plugins, userService, cfg.PrintMessages),
		Error:       bot.OnError,
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	err = updater.StartPolling(b, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout:        10,
			AllowedUpdates: []string{"message", "callback_query"},
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: 15 * time.Second,
			},
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start polling")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	monitorDone := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(monitorDone)
	}()

	log.Info().Msg("Bot started")
	<-ctx.Done()

	log.Info().Msg("Shutting down")
	if err := updater.Stop(); err != nil {
		log.Err(err).Msg("Failed to stop updater")
	}
	<-monitorDone
}
