package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

type synonyms struct {
	backend BackendClient
	typing  TypingNotifier
}

func NewSynonyms(backend BackendClient, typing TypingNotifier) *synonyms {
	return &synonyms{
		backend: backend,
		typing:  typing,
	}
}

func (s *synonyms) Handle(ctx context.Context, msg *domain.InboundMessage) []domain.Reply {
	word, ok := msg.FirstWord()
	if !ok {
		return domain.Text(domain.SomethingWentWrongMessage)
	}

	startTyping(ctx, s.typing, msg.ChatID)

	req := domain.NewBackendRequest(domain.BackendDictionary, url.PathEscape(word)+"/synonyms", nil)
	result, err := s.backend.Call(ctx, req)
	if err != nil {
		return errorReply(ctx, err)
	}

	switch r := result.(type) {
	case domain.BackendSuccess:
		var resp domain.SynonymsResponse
		if err := json.Unmarshal(r.Payload, &resp); err != nil {
			return errorReply(ctx, fmt.Errorf("decoding synonyms response: %w", err))
		}
		return domain.Text(formatSynonyms(word, resp.Synonyms))

	case domain.BackendFailure:
		slog.WarnContext(ctx, "Dictionary backend failed", "status", r.StatusCode, "body", string(r.Body))
		return domain.Text(domain.BackendFailureText(r.Detail()))

	default:
		return errorReply(ctx, fmt.Errorf("unexpected backend result %T", result))
	}
}

func formatSynonyms(word string, list []string) string {
	if len(list) == 0 {
		return fmt.Sprintf("Your word is: %s. Seems like this word has no synonyms.", word)
	}
	return fmt.Sprintf("Your word is: %s. Here is a list of synonyms: \n%s", word, strings.Join(list, "\n"))
}
