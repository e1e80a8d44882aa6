// Package service contains the intent enrichment workflows
package service

import (
	"context"
	"time"

	"fiberdex/internal/core/intent"
	"fiberdex/internal/modkit/repokit"
	"fiberdex/internal/platform/logger"
	"fiberdex/internal/platform/store"
	ptime "fiberdex/internal/platform/time"
	"fiberdex/internal/services/api/intent/domain"
	"fiberdex/internal/services/api/intent/repo"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Service defines the service contract for intent enrichment
type Service interface{ domain.ServicePort }

// Options tunes the service beyond its required deps
type Options struct {
	// TTL bounds lexicon snapshot age; <= 0 refreshes on every query
	TTL time.Duration
	// Clock overrides the wall clock, for deterministic tests
	Clock clockwork.Clock
	// Events, when non nil, receives one analytics row per enrichment
	Events store.Clickhouse
	// Log receives refresh and sink diagnostics
	Log logger.Logger
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cache  *Cache
	events store.Clickhouse
	log    logger.Logger
}

// New creates a new intent service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("intent.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("intent.Service requires a non nil Repo binder")
	}
	r := binder.Bind(db)
	return &Svc{
		Repo:   r,
		binder: binder,
		db:     db,
		cache:  NewCache(r, opt.TTL, opt.Clock, opt.Log),
		events: opt.Events,
		log:    opt.Log,
	}
}

// Enrich classifies the query and scans it for a known fiber name using the
// cached lexicon. A hit sets matched_fiber and forces requires_search; a miss
// leaves the classified defaults untouched. The only side effects are a
// possible lexicon refresh and the best-effort analytics insert
func (s *Svc) Enrich(ctx context.Context, in domain.EnrichInput) (domain.QueryIntent, error) {
	convID := in.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	}

	cls := intent.Classify(in.Query)
	out := domain.QueryIntent{
		ConversationID: convID,
		Kind:           string(cls.Kind),
		RequiresSearch: cls.RequiresSearch,
		NeedsImages:    cls.NeedsImages,
	}

	snap := s.cache.Snapshot(ctx)
	out.LexiconSize = snap.Len()
	if name, ok := snap.Match(in.Query); ok {
		out.MatchedFiber = name
		out.RequiresSearch = true
		out.SearchTerms = append(out.SearchTerms, name)
	}
	if len(out.SearchTerms) == 0 {
		// downstream search falls back to the raw query
		out.SearchTerms = []string{in.Query}
	}

	s.record(ctx, out)
	return out, nil
}

// Lexicon reports the cached snapshot state for operators
func (s *Svc) Lexicon(_ context.Context) (domain.LexiconStatus, error) {
	loaded, size, age, takenAt := s.cache.Status()
	st := domain.LexiconStatus{
		Loaded:     loaded,
		Size:       size,
		AgeSeconds: int64(age / time.Second),
		TTLSeconds: int64(s.cache.TTL() / time.Second),
	}
	if t := ptime.Ptr(takenAt); t != nil {
		st.RefreshedAt = t.UTC().Format(time.RFC3339)
	}
	return st, nil
}

// InvalidateLexicon drops the cached snapshot. Always succeeds; the refresh
// happens lazily on the next enrichment, so callers should expect one extra
// store read then, not now
func (s *Svc) InvalidateLexicon(_ context.Context) (domain.InvalidateAck, error) {
	s.cache.Invalidate()
	return domain.InvalidateAck{Status: "ok"}, nil
}

// record inserts one analytics row into the events sink when configured.
// Failures are logged at debug and never reach the query path
func (s *Svc) record(ctx context.Context, qi domain.QueryIntent) {
	if s.events == nil {
		return
	}
	row := [][]any{{
		uuid.NewString(),
		qi.ConversationID,
		qi.Kind,
		qi.MatchedFiber,
		uint8(boolToInt(qi.RequiresSearch)),
		int32(qi.LexiconSize),
		time.Now().UTC(),
	}}
	if err := s.events.Insert(ctx, "intent_events", row); err != nil {
		s.log.Debug().Err(err).Msg("intent analytics insert failed")
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
