package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
)

type Handler interface {
	Handle(ctx context.Context, msg *domain.InboundMessage) []domain.Reply
}

type MatchFunc func(msg *domain.InboundMessage) bool

// MatchRule binds a predicate to the handler that owns matching messages.
type MatchRule struct {
	Name    string
	Match   MatchFunc
	Handler Handler
}

// Router picks the first rule whose predicate matches. The fallback handler
// is always appended as the last, always-true rule, so Route never fails.
type Router struct {
	rules []MatchRule
}

func NewRouter(fallback Handler, rules ...MatchRule) *Router {
	all := make([]MatchRule, 0, len(rules)+1)
	all = append(all, rules...)
	all = append(all, MatchRule{
		Name:    "fallback",
		Match:   func(*domain.InboundMessage) bool { return true },
		Handler: fallback,
	})
	return &Router{rules: all}
}

func (r *Router) Match(msg *domain.InboundMessage) MatchRule {
	for _, rule := range r.rules {
		if rule.Match(msg) {
			return rule
		}
	}
	// unreachable: the fallback rule always matches
	return r.rules[len(r.rules)-1]
}

func (r *Router) Route(msg *domain.InboundMessage) Handler {
	return r.Match(msg).Handler
}

func (r *Router) HandleMessage(ctx context.Context, msg *domain.InboundMessage) []domain.Reply {
	rule := r.Match(msg)
	slog.InfoContext(ctx, "Calling handler", "rule", rule.Name, "handler", fmt.Sprintf("%T", rule.Handler))

	return rule.Handler.Handle(ctx, msg)
}
