package domain

// Reply is an outbound action for the chat the message came from.
// It is either a TextReply or a VoiceReply.
type Reply interface {
	isReply()
}

type TextReply struct {
	Body string
	// Markdown marks the body for rendering into Telegram HTML before sending.
	Markdown bool
}

type VoiceReply struct {
	Audio    []byte
	Filename string
}

func (TextReply) isReply()  {}
func (VoiceReply) isReply() {}

func Text(body string) []Reply {
	return []Reply{TextReply{Body: body}}
}
