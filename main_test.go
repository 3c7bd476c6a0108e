package main

import (
	"context"
	"testing"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

var requiredEnv = map[string]string{
	"TELEGRAM_BOT_TOKEN": "123:abc",
	"RAPIDAPI_KEY":       "key",
	"SPEECH_BACKEND_URL": "https://speech.example.com/text2speech",
	"WORDS_BACKEND_URL":  "https://words.example.com/words",
}

func parseConfig(t *testing.T, extra map[string]string) (Config, error) {
	t.Helper()
	environment := map[string]string{}
	for k, v := range requiredEnv {
		environment[k] = v
	}
	for k, v := range extra {
		environment[k] = v
	}

	cfg := Config{}
	err := env.ParseWithOptions(&cfg, env.Options{Environment: environment})
	return cfg, err
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(t, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SpeechBackendHost != "joj-text-to-speech.p.rapidapi.com" {
		t.Errorf("SpeechBackendHost = %q", cfg.SpeechBackendHost)
	}
	if cfg.WordsBackendHost != "wordsapiv1.p.rapidapi.com" {
		t.Errorf("WordsBackendHost = %q", cfg.WordsBackendHost)
	}
	if cfg.BackendTimeout != 20*time.Second || cfg.HandlerTimeout != time.Minute {
		t.Errorf("timeouts = %v, %v", cfg.BackendTimeout, cfg.HandlerTimeout)
	}
	if cfg.WebhookPath != "/bot/" || cfg.HTTPListenAddr != ":8350" || cfg.UpdatesBufferSize != 100 {
		t.Errorf("webhook settings = %q %q %d", cfg.WebhookPath, cfg.HTTPListenAddr, cfg.UpdatesBufferSize)
	}
	if len(cfg.TelegramAuthorizedUserIDs) != 0 {
		t.Errorf("TelegramAuthorizedUserIDs = %v, want empty", cfg.TelegramAuthorizedUserIDs)
	}
	if cfg.WebhookURL() != "" {
		t.Errorf("WebhookURL = %q, want long polling", cfg.WebhookURL())
	}
}

func TestConfigAuthorizedUsers(t *testing.T) {
	cfg, err := parseConfig(t, map[string]string{"TELEGRAM_AUTHORIZED_USER_IDS": "1 42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.TelegramAuthorizedUserIDs) != 2 || cfg.TelegramAuthorizedUserIDs[1] != 42 {
		t.Errorf("TelegramAuthorizedUserIDs = %v", cfg.TelegramAuthorizedUserIDs)
	}
}

func TestConfigRequiresSecrets(t *testing.T) {
	for key := range requiredEnv {
		t.Run(key, func(t *testing.T) {
			if _, err := parseConfig(t, map[string]string{key: ""}); err == nil {
				t.Errorf("expected an error without %s", key)
			}
		})
	}
}

func TestWebhookURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"", "/bot/", ""},
		{"https://bot.example.com", "/bot/", "https://bot.example.com/bot/"},
		{"https://bot.example.com/", "/bot/", "https://bot.example.com/bot/"},
		{"https://bot.example.com", "hook", "https://bot.example.com/hook"},
	}

	for _, tt := range tests {
		cfg := Config{WebhookBaseURL: tt.base, WebhookPath: tt.path}
		if got := cfg.WebhookURL(); got != tt.want {
			t.Errorf("WebhookURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

type stubBackend struct{}

func (stubBackend) Call(context.Context, domain.BackendRequest) (domain.BackendResult, error) {
	return domain.BackendSuccess{Payload: []byte(`{"word":"happy","synonyms":[]}`)}, nil
}

type stubTyping struct{}

func (stubTyping) StartTyping(context.Context, int64) error { return nil }

func TestRouterWiring(t *testing.T) {
	router := newRouter(stubBackend{}, stubTyping{})

	text := func(s string) *domain.InboundMessage { return &domain.InboundMessage{ChatID: 1, Text: &s} }

	tests := []struct {
		msg  *domain.InboundMessage
		want string
	}{
		{text("/start"), "start"},
		{text("/start@words_bot"), "start"},
		{text("/voice hello"), "voice"},
		{text("/voice"), "voice"},
		{text("/voice\nhello"), "voice"},
		{text("/voice\thello"), "voice"},
		{text("/start now"), "fallback"},
		{text("happy"), "fallback"},
		{&domain.InboundMessage{ChatID: 1}, "fallback"},
	}

	for _, tt := range tests {
		if got := router.Match(tt.msg).Name; got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.msg.TextValue(), got, tt.want)
		}
	}
}
