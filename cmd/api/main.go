package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "pet-demo-api/internal/adapters/storage/memory"
	pg "pet-demo-api/internal/adapters/storage/postgres"
	"pet-demo-api/internal/domain/pets"
	"pet-demo-api/internal/platform/config"
	"pet-demo-api/internal/platform/httpclient"
	"pet-demo-api/internal/platform/logger"
	"pet-demo-api/internal/router"
)

// @title Pet Demo REST API Service
// @version 1.0
// @description CRUD de mascotas (id, name, kind) con store en memoria o Postgres.
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0
// @BasePath /
func main() {
	healthcheck := flag.Bool("healthcheck", false, "GET /health en el puerto configurado y salir (0 = ok)")
	flag.Parse()

	cfg := config.Load()

	if *healthcheck {
		if err := probe(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log := logger.New(cfg.Logger())
	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, db, err := openRepo(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	if cfg.LoadDemoData {
		created, err := pets.NewService(repo).LoadDemo(ctx)
		if err != nil {
			return err
		}
		log.Info("demo pets loaded", map[string]any{"count": len(created)})
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Logger: log, PetRepo: repo}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "debug": cfg.Debug})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openRepo elige Postgres si hay DB_DSN, si no in-memory.
func openRepo(ctx context.Context, cfg config.Config, log logger.Logger) (pets.Repository, *sql.DB, error) {
	if cfg.DBDSN == "" {
		log.Info("using in-memory pet store", nil)
		return mem.NewPetRepo(), nil, nil
	}

	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	log.Info("using postgres pet store", nil)
	return pg.NewPetsRepo(db), db, nil
}

func probe(cfg config.Config) error {
	c := httpclient.New(2 * time.Second)
	url := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Port)
	if _, err := c.Do(context.Background(), http.MethodGet, url, nil, nil); err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}
	return nil
}
