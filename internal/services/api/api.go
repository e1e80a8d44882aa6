// Package api provides the HTTP API for the application
package api

import (
	"fiberdex/internal/platform/config"
	"fiberdex/internal/platform/logger"
	phttp "fiberdex/internal/platform/net/http"
	"fiberdex/internal/platform/store"

	"fiberdex/internal/modkit"
	"fiberdex/internal/modkit/httpkit"
	"fiberdex/internal/modkit/module"
	"fiberdex/internal/modkit/swaggerkit"

	intentmod "fiberdex/internal/services/api/intent/module"
	metamod "fiberdex/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	} else {
		deps.Log = *logger.Get()
	}

	mods := []module.Module{
		metamod.New(deps),
		intentmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
