package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"github.com/ovenlight/bakeshop/internal/app"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	newRegistry,
	newRouter,
)

func newRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

type routerParams struct {
	fx.In

	Facade   *app.StorefrontFacade
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Logger, p.Registry)
}
