package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notedock/internal/adapters/filesystem"
	"notedock/internal/adapters/httpapi"
	"notedock/internal/adapters/opener"
	"notedock/internal/adapters/preview"
	"notedock/internal/adapters/restart"
	"notedock/internal/adapters/sqlite"
	"notedock/internal/adapters/watcher"
	"notedock/internal/application/commands"
	"notedock/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "site root containing docs/ and .vitepress/")
	addrFlag := flag.String("addr", config.Addr(), "listen address")
	indexFlag := flag.String("index", config.IndexDB(), `document index database ("auto" for the default location, empty to disable)`)
	noReload := flag.Bool("no-reload", false, "do not restart the dev server after structural changes")
	noWatch := flag.Bool("no-watch", false, "do not watch docs/ for external edits")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	level := config.LogLevel()
	if *logLevel != "" {
		level = config.ParseLevel(*logLevel)
	}
	logger := config.NewLogger(level)
	slog.SetDefault(logger)

	if err := run(*rootFlag, *addrFlag, *indexFlag, !*noReload, !*noWatch, logger); err != nil {
		logger.Error("notedock stopped", "error", err)
		os.Exit(1)
	}
}

func run(root, addr, indexDB string, reload, watch bool, logger *slog.Logger) error {
	opts := []filesystem.Option{filesystem.WithLogger(logger)}

	var restarter *restart.Signal
	if reload {
		restarter = restart.NewSignal(root, config.RestartStop(), config.RestartStart(), restart.WithLogger(logger))
		opts = append(opts, filesystem.WithReloader(restarter))
	}

	if indexDB != "" {
		idx, err := openIndex(root, indexDB, logger)
		if err != nil {
			return err
		}
		defer idx.Close()
		opts = append(opts, filesystem.WithIndex(idx))
	}

	repo := filesystem.NewRepository(root, opts...)
	defer repo.Wait()

	ctx, stop := signalContext()
	defer stop()

	refresh := func() {
		if _, err := commands.NewRefreshLandingCommand(repo).Execute(ctx); err != nil {
			logger.Warn("landing refresh failed", "error", err)
		}
	}
	refresh()

	if watch {
		w := watcher.New(repo.ContentDir(), refresh, logger)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Warn("watcher stopped", "error", err)
			}
		}()
	}

	srv := httpapi.NewServer(repo,
		httpapi.WithOpener(opener.NewOpener(repo.Root())),
		httpapi.WithRenderer(preview.NewRenderer()),
		httpapi.WithLogger(logger),
	)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("notedock listening", "url", "http://"+addr, "root", repo.Root())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	srv.Wait()
	if restarter != nil {
		restarter.Wait()
	}
	return nil
}

// openIndex opens the document index and brings it up to date with disk
func openIndex(root, dbPath string, logger *slog.Logger) (*sqlite.Index, error) {
	if dbPath == "auto" {
		dbPath = ""
	}
	idx := sqlite.NewIndex(dbPath)
	if err := idx.Open(root); err != nil {
		return nil, err
	}

	sync := idx.SyncIncremental
	if idx.NeedsFullRebuild() {
		sync = idx.SyncFull
	}
	stats, err := sync()
	if err != nil {
		idx.Close()
		return nil, err
	}
	logger.Info("document index synced",
		"added", stats.DocumentsAdded,
		"updated", stats.DocumentsUpdated,
		"deleted", stats.DocumentsDeleted,
		"scanned", stats.FilesScanned,
		"elapsed", stats.Duration)
	return idx, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
