package matchers

import "github.com/dskvich/synonym-voice-bot/pkg/domain"

// IsCommand matches a message consisting of the command alone,
// optionally addressed as /command@botname.
func IsCommand(command string) func(*domain.InboundMessage) bool {
	return func(msg *domain.InboundMessage) bool {
		if !msg.HasText() {
			return false
		}
		text := domain.CommandText(msg.TextValue())
		return text.Command() == command && text.Arguments() == ""
	}
}

// HasCommand matches a message starting with the command token,
// whatever follows it.
func HasCommand(command string) func(*domain.InboundMessage) bool {
	return func(msg *domain.InboundMessage) bool {
		if !msg.HasText() {
			return false
		}
		return domain.CommandText(msg.TextValue()).Command() == command
	}
}
