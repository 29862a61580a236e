package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/orkonung/pitchplot/internal/server"
	"github.com/orkonung/pitchplot/pkg/cache"
)

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command, which runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, redisAddr, cacheDir, namespace string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Serve starts an HTTP API that renders event data to pitch figures.

Endpoints:
  GET  /healthz     liveness check
  GET  /v1/themes   list built-in themes
  GET  /v1/presets  list coordinate presets
  POST /v1/render   render events to an artifact

With --redis, artifacts are cached in Redis so multiple instances share one
store; otherwise the local file cache is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, cacheDir, namespace, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address (host:port) for shared artifact caching")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for the file cache (default: user cache dir)")
	cmd.Flags().StringVar(&namespace, "cache-namespace", "", "prefix for this instance's cache keys on a shared store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, cacheDir, namespace string, noCache bool) error {
	store, err := c.serveCache(ctx, redisAddr, cacheDir, noCache)
	if err != nil {
		return err
	}

	var keyer cache.Keyer
	if namespace != "" {
		keyer = cache.NewScopedKeyer(nil, namespace+":")
	}

	srv := server.New(store, keyer, c.Logger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("render service listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		_ = srv.Close()
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_ = srv.Close()
		return err
	}
	return srv.Close()
}

// serveCache picks the cache backend for the service.
func (c *CLI) serveCache(ctx context.Context, redisAddr, dir string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return store, nil
	}
	if dir != "" {
		return cache.NewFileCache(dir)
	}
	return newCache(false)
}
