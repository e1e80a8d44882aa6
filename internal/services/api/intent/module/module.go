// Package module wires intent enrichment into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "fiberdex/internal/modkit"
	"fiberdex/internal/modkit/httpkit"
	str "fiberdex/internal/platform/strings"
	intenthttp "fiberdex/internal/services/api/intent/http"
	intentrepo "fiberdex/internal/services/api/intent/repo"
	intentsvc "fiberdex/internal/services/api/intent/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc intentsvc.Service
}

// New constructs an intent module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("intent"), modkit.WithPrefix("/intent")}, opts...)...)

	cfg := deps.Cfg.Prefix("LEXICON_")
	svc := intentsvc.New(deps.PG, intentrepo.NewPG(), intentsvc.Options{
		TTL:    cfg.MayDuration("TTL", time.Hour),
		Events: deps.CH,
		Log:    deps.Log,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptIntentPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		intenthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
