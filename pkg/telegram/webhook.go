package telegram

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/synonym-voice-bot/pkg/api/response"
	"github.com/dskvich/synonym-voice-bot/pkg/logger"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// webhook accepts Telegram deliveries and queues them for the dispatcher.
// It never waits for a handler to run.
type webhook struct {
	secret  string
	updates chan<- tgbotapi.Update
	writer  response.JSONResponseWriter
}

func NewWebhook(secret string, updates chan<- tgbotapi.Update) *webhook {
	return &webhook{
		secret:  secret,
		updates: updates,
	}
}

func (wh *webhook) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if !wh.authorized(r) {
		slog.WarnContext(r.Context(), "Rejected webhook delivery with a wrong secret token", "remote", r.RemoteAddr)
		wh.writer.WriteErrorResponse(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		slog.WarnContext(r.Context(), "Decoding webhook update", logger.Err(err))
		wh.writer.WriteErrorResponse(w, r, http.StatusBadRequest, "invalid update json")
		return
	}

	select {
	case wh.updates <- update:
		wh.writer.WriteAccepted(w, r)
	case <-r.Context().Done():
		wh.writer.WriteErrorResponse(w, r, http.StatusServiceUnavailable, "shutting down")
	}
}

func (wh *webhook) authorized(r *http.Request) bool {
	if wh.secret == "" {
		return true
	}
	got := r.Header.Get(secretTokenHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(wh.secret)) == 1
}

// NewWebhookRouter serves the webhook on path and a /ping health check.
func NewWebhookRouter(path string, wh *webhook) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post(path, wh.HandleUpdate)
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	return r
}
