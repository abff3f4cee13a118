package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	internalbot "taskbot/internal/bot"
	"taskbot/internal/command"
	"taskbot/internal/config"
	"taskbot/internal/db"
	taskpg "taskbot/internal/db/task/postgres"
	userpg "taskbot/internal/db/user/postgres"
	"taskbot/internal/service"
)

var (
	start internalbot.Handler
	add   internalbot.Handler
	view  internalbot.Handler
	upd   internalbot.Handler
	del   internalbot.Handler
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load config")
	}
	log := newLogger(cfg.Env)

	if err := db.Migrate(cfg.Postgres.DSN()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := db.Connect(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	svc := service.New(log, userpg.New(pool, log), taskpg.New(pool, log))

	start = internalbot.NewStartHandler(svc, log)
	add = internalbot.NewAddTaskHandler(svc, log)
	view = internalbot.NewViewTasksHandler(svc, log)
	upd = internalbot.NewUpdateTaskHandler(svc, log)
	del = internalbot.NewDeleteTaskHandler(svc, log)

	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, u *models.Update) {}))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, command.StartPrefix, bot.MatchTypeExact, start.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, command.AddTaskPrefix, bot.MatchTypePrefix, add.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, command.ViewTasksPrefix, bot.MatchTypeExact, view.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, command.UpdateTaskPrefix, bot.MatchTypePrefix, upd.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, command.DeleteTaskPrefix, bot.MatchTypePrefix, del.Handle)

	log.Info().Str("env", cfg.Env).Msg("bot started")
	b.Start(ctx)
	log.Info().Msg("bot stopped")
}

func newLogger(env string) zerolog.Logger {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	switch env {
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		cw := zerolog.NewConsoleWriter()
		cw.TimeFormat = time.DateTime
		log = log.Output(cw)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return log
}
