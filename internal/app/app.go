package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/manafood/internal/config"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewOrderingFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

// serverRunner binds the listener on start so an unusable address fails
// startup, then serves in the background until stopped.
type serverRunner struct {
	server     *http.Server
	shutdowner fx.Shutdowner
	logger     *slog.Logger
	cfg        *config.Config
}

func registerLifecycle(p lifecycleParams) {
	r := &serverRunner{
		server:     p.Server,
		shutdowner: p.Shutdowner,
		logger:     p.Logger,
		cfg:        p.Config,
	}
	p.Lifecycle.Append(fx.Hook{OnStart: r.start, OnStop: r.stop})
}

func (r *serverRunner) start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", r.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", r.server.Addr, err)
	}

	r.logger.Info("starting manafood",
		slog.String("addr", ln.Addr().String()),
		slog.String("region", r.cfg.Region),
	)
	go r.serve(ln)
	return nil
}

func (r *serverRunner) serve(ln net.Listener) {
	if err := r.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.logger.Error("http server terminated", slog.String("error", err.Error()))
		_ = r.shutdowner.Shutdown()
	}
}

func (r *serverRunner) stop(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.ShutdownTimeout)
		defer cancel()
	}

	if err := r.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	r.logger.Info("manafood stopped")
	return nil
}
