package menu

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/menunav/pkg/config"
	"github.com/mchmarny/menunav/pkg/logger"
	"github.com/mchmarny/menunav/pkg/metric"
	"github.com/mchmarny/menunav/pkg/server"
)

const moduleName = "menunav"

// Run sets up logging and metrics, then navigates the built-in menu over in and out
// until the session ends. When cfg enables it, a metrics server runs alongside the
// session and is shut down once the session returns.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	logger.SetDefaultLogger(moduleName, cfg.Version, cfg.LogLevel)
	slog.Debug("starting session", "metrics_port", cfg.MetricsPort)

	return run(ctx, cfg, Default(cfg.Version), in, out)
}

func run(ctx context.Context, cfg config.Config, m *Menu, in io.Reader, out io.Writer) error {
	reg := prometheus.NewRegistry()

	nav, err := NewNavigator(m, WithCounter(metric.NewChoiceCounter(reg)))
	if err != nil {
		return fmt.Errorf("failed to create navigator: %w", err)
	}

	if !cfg.MetricsEnabled() {
		return nav.Navigate(ctx, in, out)
	}

	srv := server.New(
		server.WithPort(cfg.MetricsPort),
		server.WithSimpleHealth(),
		server.WithMetrics(reg),
		server.WithHandler("/menu", m.Handler()),
	)

	serveCtx, stop := context.WithCancel(ctx)
	defer stop()

	var g errgroup.Group

	g.Go(func() error {
		// the session outcome alone decides the exit status
		if err := srv.Serve(serveCtx); err != nil {
			slog.Error("metrics server stopped", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		defer stop()
		return nav.Navigate(ctx, in, out)
	})

	return g.Wait()
}
