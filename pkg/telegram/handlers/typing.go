package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
	"github.com/dskvich/synonym-voice-bot/pkg/logger"
)

// typingWait caps how long a handler waits for the chat action before
// moving on to the backend call.
var typingWait = 2 * time.Second

// startTyping is best effort: a failed or slow chat action never fails or
// stalls the handler.
func startTyping(ctx context.Context, notifier TypingNotifier, chatID int64) {
	done := make(chan error, 1)
	go func() {
		done <- notifier.StartTyping(ctx, chatID)
	}()

	timer := time.NewTimer(typingWait)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			slog.WarnContext(ctx, "Sending typing indicator failed", logger.Err(err))
		}
	case <-timer.C:
		slog.WarnContext(ctx, "Typing indicator is slow, not waiting for it", "wait", typingWait)
	case <-ctx.Done():
	}
}

func errorReply(ctx context.Context, err error) []domain.Reply {
	slog.ErrorContext(ctx, "Handling message failed", logger.Err(err))
	return domain.Text(domain.ErrorHappenedText(err))
}
