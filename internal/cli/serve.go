package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rebarcad/cutlist/internal/server"
	"github.com/rebarcad/cutlist/pkg/cache"
	"github.com/rebarcad/cutlist/pkg/project"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cacheKind string // "none", "file" or "redis"
	cacheDir  string // directory for the file cache
	redisAddr string // redis address for the redis cache
}

// newServeCmd creates the serve command: load a project file once and
// serve rendered cut lists over HTTP.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		cacheKind: "none",
		cacheDir:  ".cutlist-cache",
		redisAddr: "localhost:6379",
	}

	cmd := &cobra.Command{
		Use:   "serve [project file]",
		Short: "Serve rendered cut lists over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", opts.cacheKind, "render cache backend: none, file, redis")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", opts.cacheDir, "directory for the file cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address for the redis cache")

	return cmd
}

func runServe(ctx context.Context, path string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	proj, err := project.Parse(data)
	if err != nil {
		return err
	}

	store, err := newStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize %s cache: %w", opts.cacheKind, err)
	}
	defer func() { _ = store.Close() }()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.New(proj, data, store, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving cut lists", "addr", opts.addr, "bars", len(proj.Bars), "cache", opts.cacheKind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newStore builds the configured cache backend.
func newStore(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.cacheKind {
	case "file":
		return cache.NewFileCache(opts.cacheDir)
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	case "none", "":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", opts.cacheKind)
	}
}
