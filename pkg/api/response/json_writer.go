package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dskvich/synonym-voice-bot/pkg/logger"
)

type JSONResponseWriter struct{}

// WriteAccepted acknowledges a webhook delivery. Telegram only looks at the status.
func (j *JSONResponseWriter) WriteAccepted(w http.ResponseWriter, r *http.Request) {
	j.write(w, r, http.StatusOK, StatusResponse{OK: true})
}

func (j *JSONResponseWriter) WriteErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	j.write(w, r, statusCode, ErrorResponse{Error: message})
}

func (j *JSONResponseWriter) write(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "encoding response", logger.Err(err))
	}
}

type StatusResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
