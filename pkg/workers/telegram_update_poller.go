package workers

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UpdatePoller interface {
	DeleteWebhook(ctx context.Context) error
	PollUpdates(ctx context.Context) <-chan tgbotapi.Update
}

// telegramUpdatePoller feeds long-polled updates into the dispatcher queue.
// It is used when the bot has no public webhook URL.
type telegramUpdatePoller struct {
	poller  UpdatePoller
	updates chan<- tgbotapi.Update
}

func NewTelegramUpdatePoller(poller UpdatePoller, updates chan<- tgbotapi.Update) *telegramUpdatePoller {
	return &telegramUpdatePoller{
		poller:  poller,
		updates: updates,
	}
}

func (t *telegramUpdatePoller) Name() string { return "telegram_poller_worker" }

func (t *telegramUpdatePoller) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", t.Name())
	defer slog.Info("Worker stopped", "name", t.Name())

	// getUpdates is refused while a webhook is registered.
	if err := t.poller.DeleteWebhook(ctx); err != nil {
		return fmt.Errorf("switching to long polling: %w", err)
	}

	polled := t.poller.PollUpdates(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-polled:
			if !ok {
				return nil
			}
			select {
			case t.updates <- update:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
