package matchers

import (
	"testing"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

func msg(text string) *domain.InboundMessage {
	return &domain.InboundMessage{Text: &text}
}

func TestIsCommand(t *testing.T) {
	isStart := IsCommand("/start")

	tests := []struct {
		msg      *domain.InboundMessage
		expected bool
	}{
		{msg("/start"), true},
		{msg("/start@bot"), true},
		{msg("/start "), true},
		{msg("/start x"), false},
		{msg("/start\n"), true},
		{msg("/start\tx"), false},
		{msg("/started"), false},
		{msg("start"), false},
		{msg(""), false},
		{&domain.InboundMessage{}, false},
	}

	for _, test := range tests {
		if got := isStart(test.msg); got != test.expected {
			t.Errorf("IsCommand(%q) = %v, want %v", test.msg.TextValue(), got, test.expected)
		}
	}
}

func TestHasCommand(t *testing.T) {
	isVoice := HasCommand("/voice")

	tests := []struct {
		msg      *domain.InboundMessage
		expected bool
	}{
		{msg("/voice"), true},
		{msg("/voice "), true},
		{msg("/voice hello world"), true},
		{msg("/voice@bot hello"), true},
		{msg("/voice\nhello"), true},
		{msg("/voice\thello"), true},
		{msg("/voice@bot\nhello"), true},
		{msg("/voices"), false},
		{msg("voice hello"), false},
		{msg("hello /voice"), false},
		{&domain.InboundMessage{}, false},
	}

	for _, test := range tests {
		if got := isVoice(test.msg); got != test.expected {
			t.Errorf("HasCommand(%q) = %v, want %v", test.msg.TextValue(), got, test.expected)
		}
	}
}
