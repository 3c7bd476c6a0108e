package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestToInboundMessage(t *testing.T) {
	update := &tgbotapi.Update{
		UpdateID: 7,
		Message: &tgbotapi.Message{
			MessageID: 3,
			From:      &tgbotapi.User{ID: 99, FirstName: "Ann", LastName: "Lee"},
			Chat:      &tgbotapi.Chat{ID: 42},
			Text:      "happy",
		},
	}

	msg, ok := ToInboundMessage(update)
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.UpdateID != 7 || msg.ChatID != 42 || msg.SenderID != 99 {
		t.Errorf("ids = %+v", msg)
	}
	if msg.SenderName != "Ann Lee" {
		t.Errorf("sender name = %q", msg.SenderName)
	}
	if !msg.HasText() || msg.TextValue() != "happy" {
		t.Errorf("text = %v", msg.Text)
	}
}

func TestToInboundMessageWithoutText(t *testing.T) {
	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:    &tgbotapi.User{ID: 99, FirstName: "Ann"},
			Chat:    &tgbotapi.Chat{ID: 42},
			Sticker: &tgbotapi.Sticker{FileID: "x"},
		},
	}

	msg, ok := ToInboundMessage(update)
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.HasText() {
		t.Errorf("text = %q, want none", msg.TextValue())
	}
	if msg.SenderName != "Ann" {
		t.Errorf("sender name = %q", msg.SenderName)
	}
}

func TestToInboundMessageSkipsOtherUpdates(t *testing.T) {
	tests := []*tgbotapi.Update{
		{UpdateID: 1},
		{UpdateID: 2, EditedMessage: &tgbotapi.Message{Text: "x", Chat: &tgbotapi.Chat{ID: 1}}},
		{UpdateID: 3, CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb"}},
	}

	for _, update := range tests {
		if _, ok := ToInboundMessage(update); ok {
			t.Errorf("update %d must be skipped", update.UpdateID)
		}
	}
}

func TestToInboundMessageWithoutSender(t *testing.T) {
	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}, Text: "/start"},
	}

	msg, ok := ToInboundMessage(update)
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.SenderName != "" || msg.SenderID != 0 {
		t.Errorf("sender = %q/%d, want empty", msg.SenderName, msg.SenderID)
	}
}
