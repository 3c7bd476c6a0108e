package domain

import "testing"

func TestCommandText(t *testing.T) {
	tests := []struct {
		text      string
		command   string
		arguments string
	}{
		{"/voice hello world", "/voice", "hello world"},
		{"/voice\nhello", "/voice", "hello"},
		{"/voice\thello there", "/voice", "hello there"},
		{"/voice@words_bot\nhello", "/voice", "hello"},
		{"/voice", "/voice", ""},
		{"/voice \n ", "/voice", ""},
		{"/start", "/start", ""},
		{"happy", "happy", ""},
		{"", "", ""},
	}

	for _, test := range tests {
		c := CommandText(test.text)
		if got := c.Command(); got != test.command {
			t.Errorf("Command(%q) = %q, want %q", test.text, got, test.command)
		}
		if got := c.Arguments(); got != test.arguments {
			t.Errorf("Arguments(%q) = %q, want %q", test.text, got, test.arguments)
		}
	}
}
