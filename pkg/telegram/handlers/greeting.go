package handlers

import (
	"context"
	"fmt"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
	"github.com/dskvich/synonym-voice-bot/pkg/render"
)

type greeting struct{}

func NewGreeting() *greeting {
	return &greeting{}
}

func (g *greeting) Handle(_ context.Context, msg *domain.InboundMessage) []domain.Reply {
	return []domain.Reply{
		domain.TextReply{
			Body:     fmt.Sprintf("Hi, %s!", render.Bold(msg.SenderName)),
			Markdown: true,
		},
	}
}
