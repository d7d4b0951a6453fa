package di

import (
	"go.uber.org/fx"

	"github.com/ovenlight/bakeshop/internal/app"
	"github.com/ovenlight/bakeshop/internal/config"
	"github.com/ovenlight/bakeshop/internal/logger"
	"github.com/ovenlight/bakeshop/internal/pkg/auth"
	"github.com/ovenlight/bakeshop/internal/server/http/router"
	"github.com/ovenlight/bakeshop/internal/storage/postgres"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
