package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

// ToInboundMessage converts a chat message update. Other update kinds
// (edits, callbacks, channel posts) are reported as not ok.
func ToInboundMessage(update *tgbotapi.Update) (*domain.InboundMessage, bool) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil, false
	}

	in := &domain.InboundMessage{
		UpdateID: update.UpdateID,
		ChatID:   msg.Chat.ID,
	}

	if msg.From != nil {
		in.SenderID = msg.From.ID
		in.SenderName = fullName(msg.From)
	}

	if msg.Text != "" {
		text := msg.Text
		in.Text = &text
	}

	return in, true
}

func fullName(u *tgbotapi.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
