package di

import (
	"github.com/anandpatel/cafewala/internal/adapter/notify"
	"github.com/anandpatel/cafewala/internal/app"
	"github.com/anandpatel/cafewala/internal/config"
	"github.com/anandpatel/cafewala/internal/logger"
	"github.com/anandpatel/cafewala/internal/pkg/auth"
	"github.com/anandpatel/cafewala/internal/server/http/handlers"
	"github.com/anandpatel/cafewala/internal/server/http/router"
	"github.com/anandpatel/cafewala/internal/storage/postgres"
	"github.com/anandpatel/cafewala/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.CafeFacade) handlers.CafeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
