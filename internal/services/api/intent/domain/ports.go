package domain

import "context"

// ServicePort defines the service contract for intent enrichment
type ServicePort interface {
	Enrich(ctx context.Context, in EnrichInput) (QueryIntent, error)
	Lexicon(ctx context.Context) (LexiconStatus, error)
	InvalidateLexicon(ctx context.Context) (InvalidateAck, error)
}
