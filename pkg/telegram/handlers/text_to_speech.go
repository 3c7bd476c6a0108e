package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

const voiceFilename = "voice.ogg"

var errNoAudioContent = errors.New("speech backend returned no audio content")

type textToSpeech struct {
	backend BackendClient
	typing  TypingNotifier
}

func NewTextToSpeech(backend BackendClient, typing TypingNotifier) *textToSpeech {
	return &textToSpeech{
		backend: backend,
		typing:  typing,
	}
}

func (t *textToSpeech) Handle(ctx context.Context, msg *domain.InboundMessage) []domain.Reply {
	query := domain.CommandText(msg.TextValue()).Arguments()
	if query == "" {
		return domain.Text(domain.SomethingWentWrongMessage)
	}

	startTyping(ctx, t.typing, msg.ChatID)

	req := domain.NewBackendRequest(domain.BackendSpeech, "", domain.NewSpeechRequest(query))
	result, err := t.backend.Call(ctx, req)
	if err != nil {
		return errorReply(ctx, err)
	}

	switch r := result.(type) {
	case domain.BackendSuccess:
		audio, err := decodeAudio(r.Payload)
		if err != nil {
			return errorReply(ctx, err)
		}
		return []domain.Reply{domain.VoiceReply{Audio: audio, Filename: voiceFilename}}

	case domain.BackendFailure:
		slog.WarnContext(ctx, "Speech backend failed", "status", r.StatusCode, "body", string(r.Body))
		return domain.Text(domain.BackendFailureText(string(r.Body)))

	default:
		return errorReply(ctx, fmt.Errorf("unexpected backend result %T", result))
	}
}

func decodeAudio(payload json.RawMessage) ([]byte, error) {
	var resp domain.SpeechResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("decoding speech response: %w", err)
	}
	if resp.AudioContent == "" {
		return nil, errNoAudioContent
	}

	// the backend may wrap long base64 payloads
	encoded := strings.Join(strings.Fields(resp.AudioContent), "")

	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding audio content: %w", err)
	}
	return audio, nil
}
