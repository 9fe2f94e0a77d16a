package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"rebanho-backend/internal/adapters/cloudsync/supabase"
	"rebanho-backend/internal/adapters/store/file"
	"rebanho-backend/internal/adapters/store/memory"
	"rebanho-backend/internal/adapters/store/sqlite"
	"rebanho-backend/internal/cloudsync"
	"rebanho-backend/internal/migrate"
	"rebanho-backend/internal/platform/config"
	"rebanho-backend/internal/platform/logger"
	"rebanho-backend/internal/router"
	"rebanho-backend/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Error("falha abrindo store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
		os.Exit(1)
	}
	if closeStore != nil {
		defer closeStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrate.Run(ctx, store, log); err != nil {
		cancel()
		log.Error("falha migrando dados", logger.Err(err))
		os.Exit(1)
	}
	cancel()

	var pusher cloudsync.Pusher
	if cfg.SupabaseDSN != "" {
		db, err := supabase.Open(cfg.SupabaseDSN)
		if err != nil {
			log.Error("falha conectando no supabase, sync desligado", logger.Err(err))
		} else {
			defer db.Close()
			pusher = supabase.NewClient(db)
		}
	}

	handler := router.New(router.Options{
		Store:  store,
		Log:    log,
		Pusher: pusher,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("servidor iniciado", map[string]any{"addr": srv.Addr, "store": cfg.StoreDriver})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("erro no servidor", logger.Err(err))
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (storage.Store, func() error, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.New(), nil, nil
	case "sqlite":
		st, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default: // file
		st, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return st, nil, nil
	}
}
