// Package http provides http transport for intent enrichment
package http

import (
	stdhttp "net/http"

	"fiberdex/internal/modkit/httpkit"
	"fiberdex/internal/services/api/intent/domain"
	svc "fiberdex/internal/services/api/intent/service"
)

// Register mounts intent endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.EnrichInput](r, "/enrich", h.enrich)
	httpkit.Get(r, "/lexicon", h.lexicon)
	httpkit.Post(r, "/lexicon/invalidate", h.invalidate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /intent/enrich Intent intentEnrich
// @Summary Classify a query and tag any known fiber it mentions
// @Tags Intent
// @Accept json
// @Produce json
// @Param payload body domain.EnrichInput true "Query"
// @Success 200 {object} domain.QueryIntent "ok"
// @Router /intent/enrich [post]
func (h *handlers) enrich(r *stdhttp.Request, in domain.EnrichInput) (any, error) {
	return h.svc.Enrich(r.Context(), in)
}

// swagger:route GET /intent/lexicon Intent intentLexicon
// @Summary Report the cached fiber lexicon state
// @Tags Intent
// @Produce json
// @Success 200 {object} domain.LexiconStatus "ok"
// @Router /intent/lexicon [get]
func (h *handlers) lexicon(r *stdhttp.Request) (any, error) {
	return h.svc.Lexicon(r.Context())
}

// swagger:route POST /intent/lexicon/invalidate Intent intentLexiconInvalidate
// @Summary Drop the cached fiber lexicon so the next query reloads it
// @Tags Intent
// @Produce json
// @Success 200 {object} domain.InvalidateAck "ok"
// @Router /intent/lexicon/invalidate [post]
func (h *handlers) invalidate(r *stdhttp.Request) (any, error) {
	return h.svc.InvalidateLexicon(r.Context())
}
