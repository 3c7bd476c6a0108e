package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
	"github.com/dskvich/synonym-voice-bot/pkg/logger"
	"github.com/dskvich/synonym-voice-bot/pkg/render"
)

const (
	pollingTimeoutSeconds = 60

	// requestTimeout has to outlast a long poll.
	requestTimeout = (pollingTimeoutSeconds + 15) * time.Second
)

type client struct {
	bot *tgbotapi.BotAPI
}

func NewClient(token string) (*client, error) {
	return NewClientWithEndpoint(token, tgbotapi.APIEndpoint)
}

// NewClientWithEndpoint talks to a custom Bot API server; endpoint is a
// format string like tgbotapi.APIEndpoint.
func NewClientWithEndpoint(token, endpoint string) (*client, error) {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = requestTimeout

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, hc)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	return &client{bot: bot}, nil
}

func (c *client) Send(ctx context.Context, chatID int64, reply domain.Reply) error {
	chattable, err := toChattable(chatID, reply)
	if err != nil {
		return err
	}

	err = c.request(ctx, func() error {
		_, err := c.bot.Send(chattable)
		return err
	})
	if err != nil {
		return c.handleError(ctx, chatID, err)
	}
	return nil
}

// request runs a Bot API call, which takes no context, and stops waiting
// for it once ctx is done.
func (c *client) request(ctx context.Context, call func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- call()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func toChattable(chatID int64, reply domain.Reply) (tgbotapi.Chattable, error) {
	switch r := reply.(type) {
	case domain.TextReply:
		msg := tgbotapi.NewMessage(chatID, r.Body)
		if r.Markdown {
			msg.Text = render.ToHTML(r.Body)
			msg.ParseMode = tgbotapi.ModeHTML
		}
		return msg, nil
	case domain.VoiceReply:
		return tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: r.Filename, Bytes: r.Audio}), nil
	default:
		return nil, fmt.Errorf("unsupported reply type %T", reply)
	}
}

// handleError tells the chat that a reply was lost, so no failure is silent.
func (c *client) handleError(ctx context.Context, chatID int64, sendErr error) error {
	slog.ErrorContext(ctx, "sending reply", logger.Err(sendErr))

	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, domain.DeliveryFailedMessage)); err != nil {
		return fmt.Errorf("sending failure notification: %w (reply error: %v)", err, sendErr)
	}

	return fmt.Errorf("sending reply: %w", sendErr)
}

func (c *client) StartTyping(ctx context.Context, chatID int64) error {
	err := c.request(ctx, func() error {
		_, err := c.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
		return err
	})
	if err != nil {
		return fmt.Errorf("sending chat action: %w", err)
	}
	return nil
}

// SetWebhook registers url with Telegram. secret, when set, comes back in
// the X-Telegram-Bot-Api-Secret-Token header of every delivery.
func (c *client) SetWebhook(_ context.Context, url, secret string) error {
	params := tgbotapi.Params{}
	params.AddNonEmpty("url", url)
	params.AddNonEmpty("secret_token", secret)

	if _, err := c.bot.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("setting webhook: %w", err)
	}

	slog.Info("webhook registered", "url", url)
	return nil
}

func (c *client) DeleteWebhook(_ context.Context) error {
	if _, err := c.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}
	return nil
}

// PollUpdates long-polls Telegram until ctx is done.
func (c *client) PollUpdates(ctx context.Context) <-chan tgbotapi.Update {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollingTimeoutSeconds

	updates := c.bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		c.bot.StopReceivingUpdates()
	}()

	return updates
}
