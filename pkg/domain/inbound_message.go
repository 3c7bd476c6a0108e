package domain

import "strings"

// InboundMessage is a single chat message received from Telegram.
// Text is nil for non-text content (stickers, photos, voice notes).
type InboundMessage struct {
	UpdateID   int
	ChatID     int64
	SenderID   int64
	SenderName string
	Text       *string
}

func (m *InboundMessage) HasText() bool {
	return m != nil && m.Text != nil
}

// TextValue returns the message text or an empty string when there is none.
func (m *InboundMessage) TextValue() string {
	if !m.HasText() {
		return ""
	}
	return *m.Text
}

// FirstWord returns the first whitespace-delimited token of the text.
func (m *InboundMessage) FirstWord() (string, bool) {
	fields := strings.Fields(m.TextValue())
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
