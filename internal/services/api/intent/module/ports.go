package module

import (
	"context"

	intentdom "fiberdex/internal/services/api/intent/domain"
	intentsvc "fiberdex/internal/services/api/intent/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptIntentPort adapts the intent service to the domain port interface
type adaptIntentPort struct{ svc intentsvc.Service }

// Enrich implements the domain ServicePort interface
func (a adaptIntentPort) Enrich(ctx context.Context, in intentdom.EnrichInput) (intentdom.QueryIntent, error) {
	return a.svc.Enrich(ctx, in)
}

// Lexicon implements the domain ServicePort interface
func (a adaptIntentPort) Lexicon(ctx context.Context) (intentdom.LexiconStatus, error) {
	return a.svc.Lexicon(ctx)
}

// InvalidateLexicon implements the domain ServicePort interface
func (a adaptIntentPort) InvalidateLexicon(ctx context.Context) (intentdom.InvalidateAck, error) {
	return a.svc.InvalidateLexicon(ctx)
}
