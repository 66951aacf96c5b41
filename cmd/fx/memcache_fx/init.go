package memcache_fx

import (
	"go.uber.org/fx"

	"fotopanel/internal/config"
	"fotopanel/internal/services"
	mem "fotopanel/pkg/memcache"
)

var Module = fx.Provide(provideTemplateCache)

func provideTemplateCache(cfg *config.Config) mem.Store[services.ResolvedTemplate] {
	return mem.NewTTLCache[services.ResolvedTemplate](cfg.TemplateCacheTTL)
}
