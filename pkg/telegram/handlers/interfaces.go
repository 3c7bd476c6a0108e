package handlers

import (
	"context"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

type BackendClient interface {
	Call(ctx context.Context, req domain.BackendRequest) (domain.BackendResult, error)
}

type TypingNotifier interface {
	StartTyping(ctx context.Context, chatID int64) error
}
