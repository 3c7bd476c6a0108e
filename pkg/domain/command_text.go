package domain

import (
	"strings"
	"unicode"
)

const (
	StartCommand = "/start"
	VoiceCommand = "/voice"
)

type CommandText string

// Command returns the leading command token without the @botname suffix.
// The token ends at the first whitespace rune of any kind.
func (c CommandText) Command() string {
	token, _ := c.split()
	token, _, _ = strings.Cut(token, "@")
	return token
}

// Arguments returns everything after the leading command token, trimmed.
func (c CommandText) Arguments() string {
	_, rest := c.split()
	return strings.TrimSpace(rest)
}

func (c CommandText) split() (string, string) {
	s := string(c)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
