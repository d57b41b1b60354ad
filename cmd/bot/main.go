package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/birthday-bot/internal/config"
	"github.com/diegoclair/birthday-bot/internal/database"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/service"
	"github.com/diegoclair/birthday-bot/internal/handlers"
	"github.com/diegoclair/birthday-bot/internal/health"
	"github.com/diegoclair/birthday-bot/internal/platform/discord"
	slackplatform "github.com/diegoclair/birthday-bot/internal/platform/slack"
	"github.com/diegoclair/birthday-bot/internal/scheduler"
	"github.com/diegoclair/birthday-bot/internal/server"
	"github.com/diegoclair/birthday-bot/migrator/sqlite"
	"github.com/diegoclair/birthday-bot/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	healthCheck := flag.Bool("health-check", false, "probe the database, print a health record and exit")
	healthFileCheck := flag.Bool("health-file-check", false, "check the health file written by a running bot and exit")
	registerCommands := flag.Bool("register-commands", false, "register the Discord slash commands and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{Env: cfg.Env, Level: cfg.LogLevel, File: cfg.LogFile})

	switch {
	case *healthFileCheck:
		os.Exit(runHealthFileCheck(cfg))
	case *healthCheck:
		os.Exit(runHealthCheck(cfg))
	case *registerCommands:
		os.Exit(runRegisterCommands(cfg))
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dm, err := openDataManager(cfg)
	if err != nil {
		return err
	}
	defer dm.Close()

	chat, err := newChat(cfg)
	if err != nil {
		return err
	}
	defer chat.close()

	services := service.NewInstance(dm, chat.platform, service.Config{
		ChannelID: cfg.BirthdayChannelID,
		RoleID:    cfg.BirthdayRoleID,
		Location:  cfg.Location,
	})

	reporter := health.NewReporter(health.Options{
		Platform:         chat.platform,
		DataManager:      dm,
		Timezone:         cfg.Timezone,
		Location:         cfg.Location,
		NotificationHour: cfg.NotificationHour,
		File:             cfg.HealthFile,
		RequirePlatform:  true,
	})
	chat.onStateChange(func(connected bool) {
		if err := reporter.WriteFile(context.Background()); err != nil {
			log.Error().Err(err).Bool("connected", connected).Msg("failed to update health file")
		}
	})

	var slashCommands http.HandlerFunc
	switch cfg.Platform {
	case domain.PlatformSlack:
		commands := handlers.NewCommandHandler(services.Birthday, cfg.BirthdayChannelID, handlers.SlackStyle)
		slashCommands = handlers.NewSlackHandler(chat.slack.API(), commands, cfg.SlackSigningSecret).HandleSlashCommand
	default:
		commands := handlers.NewCommandHandler(services.Birthday, cfg.BirthdayChannelID, handlers.DiscordStyle)
		chat.discord.Session().AddHandler(handlers.NewDiscordHandler(commands).OnInteraction)
	}

	if err := chat.open(ctx); err != nil {
		return err
	}

	sched, err := scheduler.New(scheduler.Config{
		NotificationHour: cfg.NotificationHour,
		Location:         cfg.Location,
		HealthInterval:   cfg.HealthInterval,
	}, services.Reconciler, reporter)
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}

	if err := reporter.SampleAndWrite(ctx); err != nil {
		log.Error().Err(err).Msg("failed to write initial health file")
	}

	log.Info().
		Str("platform", cfg.Platform).
		Str("timezone", cfg.Timezone).
		Str("notification_time", config.HourDisplay(cfg.NotificationHour)).
		Str("channel_id", cfg.BirthdayChannelID).
		Str("role_id", roleDisplay(cfg.BirthdayRoleID)).
		Time("next_check", sched.NextCheck()).
		Msg("birthday bot started")

	srv := server.New(server.Config{Port: cfg.Port, SlashCommands: slashCommands}, reporter)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		<-sched.Stop().Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDataManager(cfg *config.Config) (contract.DataManager, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Debug().Str("path", cfg.DatabasePath).Msg("database ready")

	return database.NewInstance(db), nil
}

// chat holds whichever platform adapter the configuration selected
type chat struct {
	platform contract.ChatPlatform
	discord  *discord.Client
	slack    *slackplatform.Client
}

func newChat(cfg *config.Config) (*chat, error) {
	switch cfg.Platform {
	case domain.PlatformSlack:
		client := slackplatform.New(slack.New(cfg.SlackBotToken))
		return &chat{platform: client, slack: client}, nil
	default:
		client, err := discord.New(cfg.DiscordToken)
		if err != nil {
			return nil, err
		}
		return &chat{platform: client, discord: client}, nil
	}
}

func (c *chat) onStateChange(fn func(connected bool)) {
	if c.discord != nil {
		c.discord.OnStateChange(fn)
	}
}

func (c *chat) open(ctx context.Context) error {
	if c.slack != nil {
		return c.slack.Open(ctx)
	}
	return c.discord.Open()
}

func (c *chat) close() {
	var err error
	if c.slack != nil {
		err = c.slack.Close()
	} else {
		err = c.discord.Close()
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to close chat connection")
	}
}

func runHealthCheck(cfg *config.Config) int {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	dm, err := openDataManager(cfg)
	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		return 1
	}
	defer dm.Close()

	record := health.NewReporter(health.Options{
		DataManager:      dm,
		Timezone:         cfg.Timezone,
		Location:         cfg.Location,
		NotificationHour: cfg.NotificationHour,
	}).Sample(ctx)

	printJSON(record)
	if !record.Healthy() {
		return 1
	}
	return 0
}

func runHealthFileCheck(cfg *config.Config) int {
	record, err := health.ReadFile(cfg.HealthFile)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.HealthFile).Msg("health file check failed")
		return 1
	}

	printJSON(record)
	if err := health.Evaluate(record, time.Now(), domain.HealthStaleAfter); err != nil {
		log.Error().Err(err).Msg("bot is unhealthy")
		return 1
	}
	return 0
}

func runRegisterCommands(cfg *config.Config) int {
	if cfg.Platform != domain.PlatformDiscord {
		log.Error().Str("platform", cfg.Platform).Msg("command registration is only needed on discord")
		return 1
	}

	client, err := discord.New(cfg.DiscordToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to create discord client")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	registered, err := client.RegisterCommands(ctx, cfg.DiscordClientID, cfg.DiscordGuildID, time.Now().In(cfg.Location).Year())
	if err != nil {
		log.Error().Err(err).Msg("failed to register commands")
		return 1
	}

	scope := "global"
	if cfg.DiscordGuildID != "" {
		scope = "guild " + cfg.DiscordGuildID
	}
	log.Info().Int("count", len(registered)).Str("scope", scope).Msg("slash commands registered")
	return 0
}

func roleDisplay(roleID string) string {
	if roleID == "" {
		return "not configured"
	}
	return roleID
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
