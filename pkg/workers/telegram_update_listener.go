package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
	"github.com/dskvich/synonym-voice-bot/pkg/logger"
	"github.com/dskvich/synonym-voice-bot/pkg/telegram"
)

type MessageHandler interface {
	HandleMessage(ctx context.Context, msg *domain.InboundMessage) []domain.Reply
}

type Authenticator interface {
	IsAuthorized(userID int64) bool
}

type ReplySender interface {
	Send(ctx context.Context, chatID int64, reply domain.Reply) error
}

// telegramUpdateListener runs every inbound update in its own goroutine, so a
// slow backend call never holds up other chats.
type telegramUpdateListener struct {
	updates        <-chan tgbotapi.Update
	sender         ReplySender
	authenticator  Authenticator
	handler        MessageHandler
	handlerTimeout time.Duration
	wg             sync.WaitGroup
}

func NewTelegramUpdateListener(
	updates <-chan tgbotapi.Update,
	sender ReplySender,
	authenticator Authenticator,
	handler MessageHandler,
	handlerTimeout time.Duration,
) (*telegramUpdateListener, error) {
	if updates == nil {
		return nil, fmt.Errorf("updates channel is required")
	}
	return &telegramUpdateListener{
		updates:        updates,
		sender:         sender,
		authenticator:  authenticator,
		handler:        handler,
		handlerTimeout: handlerTimeout,
	}, nil
}

func (t *telegramUpdateListener) Name() string { return "telegram_listener_worker" }

func (t *telegramUpdateListener) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", t.Name())
	defer slog.Info("Worker stopped", "name", t.Name())
	defer t.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			t.drain(ctx)
			return nil
		case update, ok := <-t.updates:
			if !ok {
				return nil
			}
			t.dispatch(ctx, update)
		}
	}
}

// drain dispatches updates that were already queued, and acknowledged to
// Telegram, when shutdown began.
func (t *telegramUpdateListener) drain(ctx context.Context) {
	drained := 0
	defer func() {
		if drained > 0 {
			slog.Info("Dispatched queued updates on shutdown", "count", drained)
		}
	}()

	for {
		select {
		case update, ok := <-t.updates:
			if !ok {
				return
			}
			drained++
			t.dispatch(ctx, update)
		default:
			return
		}
	}
}

func (t *telegramUpdateListener) dispatch(ctx context.Context, update tgbotapi.Update) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.processUpdate(ctx, &update)
	}()
}

func (t *telegramUpdateListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	ctx = logger.ContextWithRequestID(ctx, update.UpdateID)

	msg, ok := telegram.ToInboundMessage(update)
	if !ok {
		slog.WarnContext(ctx, "Received unknown update type")
		return
	}
	ctx = logger.ContextWithChatID(ctx, msg.ChatID)

	// Handlers already started keep running through shutdown, bounded by the timeout.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.handlerTimeout)
	defer cancel()

	slog.InfoContext(ctx, "Processing update", "userID", msg.SenderID, "hasText", msg.HasText())

	if !t.authenticator.IsAuthorized(msg.SenderID) {
		slog.WarnContext(ctx, "Unauthorized access attempt", "userID", msg.SenderID)
		t.send(ctx, msg.ChatID, domain.TextReply{Body: fmt.Sprintf("User ID %d is not authorized", msg.SenderID)})
		return
	}

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "Handler panicked", "panic", r)
			t.send(ctx, msg.ChatID, domain.TextReply{Body: domain.PanicText(r)})
		}
	}()

	for _, reply := range t.handler.HandleMessage(ctx, msg) {
		t.send(ctx, msg.ChatID, reply)
	}
}

func (t *telegramUpdateListener) send(ctx context.Context, chatID int64, reply domain.Reply) {
	if err := t.sender.Send(ctx, chatID, reply); err != nil {
		slog.ErrorContext(ctx, "Failed to send reply", logger.Err(err))
	}
}
