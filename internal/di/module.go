package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/manafood/internal/app"
	"github.com/polkiloo/manafood/internal/config"
	"github.com/polkiloo/manafood/internal/logger"
	"github.com/polkiloo/manafood/internal/pkg/validation"
	"github.com/polkiloo/manafood/internal/server/http/handlers"
	"github.com/polkiloo/manafood/internal/server/http/router"
	"github.com/polkiloo/manafood/internal/storage/memory"
	"github.com/polkiloo/manafood/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		validation.Module,
		memory.Module,
		usecase.Module,
		fx.Provide(func(f *app.OrderingFacade) handlers.OrderFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
