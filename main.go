package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/dskvich/synonym-voice-bot/pkg/auth"
	"github.com/dskvich/synonym-voice-bot/pkg/backend"
	"github.com/dskvich/synonym-voice-bot/pkg/domain"
	"github.com/dskvich/synonym-voice-bot/pkg/logger"
	"github.com/dskvich/synonym-voice-bot/pkg/telegram"
	"github.com/dskvich/synonym-voice-bot/pkg/telegram/handlers"
	"github.com/dskvich/synonym-voice-bot/pkg/telegram/matchers"
	"github.com/dskvich/synonym-voice-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken          string        `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	TelegramAuthorizedUserIDs []int64       `env:"TELEGRAM_AUTHORIZED_USER_IDS" envSeparator:" "`
	RapidAPIKey               string        `env:"RAPIDAPI_KEY,required,notEmpty"`
	SpeechBackendURL          string        `env:"SPEECH_BACKEND_URL,required,notEmpty"`
	SpeechBackendHost         string        `env:"SPEECH_BACKEND_HOST" envDefault:"joj-text-to-speech.p.rapidapi.com"`
	WordsBackendURL           string        `env:"WORDS_BACKEND_URL,required,notEmpty"`
	WordsBackendHost          string        `env:"WORDS_BACKEND_HOST" envDefault:"wordsapiv1.p.rapidapi.com"`
	BackendTimeout            time.Duration `env:"BACKEND_TIMEOUT" envDefault:"20s"`
	HandlerTimeout            time.Duration `env:"HANDLER_TIMEOUT" envDefault:"60s"`
	WebhookBaseURL            string        `env:"WEBHOOK_BASE_URL"`
	WebhookPath               string        `env:"WEBHOOK_PATH" envDefault:"/bot/"`
	WebhookSecret             string        `env:"WEBHOOK_SECRET"`
	HTTPListenAddr            string        `env:"HTTP_LISTEN_ADDR" envDefault:":8350"`
	UpdatesBufferSize         int           `env:"UPDATES_BUFFER_SIZE" envDefault:"100"`
	LogNoColor                bool          `env:"LOG_NO_COLOR"`
}

// WebhookURL is the public address Telegram delivers updates to. Empty means
// the bot falls back to long polling.
func (c Config) WebhookURL() string {
	if c.WebhookBaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(c.WebhookBaseURL, "/") + "/" + strings.TrimPrefix(c.WebhookPath, "/")
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("loading config", logger.Err(err))
		os.Exit(1)
	}

	opts := *logger.DefaultOptions
	opts.NoColor = cfg.LogNoColor
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &opts)))

	if err := runMain(cfg); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}
	return cfg, nil
}

func runMain(cfg Config) error {
	workerGroup, err := setupWorkers(cfg)
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers(cfg Config) (workers.Group, error) {
	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}
	authenticator := auth.NewAuthenticator(cfg.TelegramAuthorizedUserIDs)

	backendClient := backend.NewClient(backend.Config{
		SpeechURL:  cfg.SpeechBackendURL,
		SpeechHost: cfg.SpeechBackendHost,
		WordsURL:   cfg.WordsBackendURL,
		WordsHost:  cfg.WordsBackendHost,
		APIKey:     cfg.RapidAPIKey,
		Timeout:    cfg.BackendTimeout,
	})

	router := newRouter(backendClient, telegramClient)

	updates := make(chan tgbotapi.Update, cfg.UpdatesBufferSize)

	var workerGroup workers.Group

	listener, err := workers.NewTelegramUpdateListener(
		updates,
		telegramClient,
		authenticator,
		router,
		cfg.HandlerTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("creating update listener: %w", err)
	}
	workerGroup = append(workerGroup, listener)

	if webhookURL := cfg.WebhookURL(); webhookURL != "" {
		webhook := telegram.NewWebhook(cfg.WebhookSecret, updates)
		workerGroup = append(workerGroup, workers.NewWebhookServer(
			cfg.HTTPListenAddr,
			telegram.NewWebhookRouter(cfg.WebhookPath, webhook),
			telegramClient,
			webhookURL,
			cfg.WebhookSecret,
		))
	} else {
		slog.Info("no webhook url configured, using long polling")
		workerGroup = append(workerGroup, workers.NewTelegramUpdatePoller(telegramClient, updates))
	}

	return workerGroup, nil
}

// newRouter wires the commands. Anything that is not a command is looked up
// in the dictionary.
func newRouter(backendClient handlers.BackendClient, typing handlers.TypingNotifier) *telegram.Router {
	return telegram.NewRouter(
		handlers.NewSynonyms(backendClient, typing),
		telegram.MatchRule{
			Name:    "start",
			Match:   matchers.IsCommand(domain.StartCommand),
			Handler: handlers.NewGreeting(),
		},
		telegram.MatchRule{
			Name:    "voice",
			Match:   matchers.HasCommand(domain.VoiceCommand),
			Handler: handlers.NewTextToSpeech(backendClient, typing),
		},
	)
}
