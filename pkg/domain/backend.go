package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

type BackendKind string

const (
	BackendSpeech     BackendKind = "speech"
	BackendDictionary BackendKind = "dictionary"
)

// BackendRequest describes one call to a backend. Path is appended to the
// dictionary base URL, Payload is sent as the JSON body of speech requests.
type BackendRequest struct {
	ID      string
	Kind    BackendKind
	Path    string
	Payload any
}

func NewBackendRequest(kind BackendKind, path string, payload any) BackendRequest {
	return BackendRequest{
		ID:      uuid.NewString(),
		Kind:    kind,
		Path:    path,
		Payload: payload,
	}
}

// BackendResult is either a BackendSuccess or a BackendFailure.
// Transport and decode errors are never represented here.
type BackendResult interface {
	isBackendResult()
}

// BackendSuccess holds the JSON body of a 2xx response.
type BackendSuccess struct {
	Payload json.RawMessage
}

// BackendFailure holds the status and raw body of a non-2xx response.
type BackendFailure struct {
	StatusCode int
	Body       []byte
}

func (BackendSuccess) isBackendResult() {}
func (BackendFailure) isBackendResult() {}

// Message returns the "message" field of a JSON error body, if present.
func (f BackendFailure) Message() (string, bool) {
	var body struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(f.Body, &body); err != nil || body.Message == nil {
		return "", false
	}
	return *body.Message, true
}

// Detail prefers the "message" field and falls back to the raw body.
func (f BackendFailure) Detail() string {
	if msg, ok := f.Message(); ok {
		return msg
	}
	return string(f.Body)
}

// SpeechRequest is the JSON body accepted by the speech backend.
type SpeechRequest struct {
	Input       SpeechInput `json:"input"`
	Voice       SpeechVoice `json:"voice"`
	AudioConfig AudioConfig `json:"audioConfig"`
}

type SpeechInput struct {
	Text string `json:"text"`
}

type SpeechVoice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	SSMLGender   string `json:"ssmlGender"`
}

type AudioConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

func NewSpeechRequest(text string) SpeechRequest {
	return SpeechRequest{
		Input: SpeechInput{Text: text},
		Voice: SpeechVoice{
			LanguageCode: "en-US",
			Name:         "en-US-News-L",
			SSMLGender:   "FEMALE",
		},
		AudioConfig: AudioConfig{AudioEncoding: "OGG_OPUS"},
	}
}

type SpeechResponse struct {
	AudioContent string `json:"audioContent"`
}

type SynonymsResponse struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
}
