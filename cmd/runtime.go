package cmd

import (
	"context"
	"errors"
	"fmt"

	"objmask-workaround/core/config"
	"objmask-workaround/core/database"
	"objmask-workaround/core/logger"
	"objmask-workaround/core/storage"
	"objmask-workaround/feature/balance"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is what every command builds before doing its work.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	store   storage.Client
	service *balance.Service
}

// newRuntime loads configuration, the logger and the optional history
// database. withStorage also creates the object storage client.
func newRuntime(ctx context.Context, withStorage bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, log: l}

	// History is optional.
	if conn, err := database.Connect(cfg.Database); err != nil {
		if !errors.Is(err, database.ErrDisabled) {
			l.Warn("Optional database connection failed", zap.Error(err))
		}
	} else {
		rt.db = conn
	}

	if withStorage {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.store = store
	}

	rt.service = balance.NewService(cfg.Balance, rt.store, cfg.Storage.Bucket, l, rt.db)
	if err := rt.service.Migrate(ctx); err != nil {
		l.Warn("Run history unavailable", zap.Error(err))
		rt.db = nil
		rt.service = balance.NewService(cfg.Balance, rt.store, cfg.Storage.Bucket, l, nil)
	}

	return rt, nil
}

// rebuild resolves arg and runs the pipeline over the files it names.
func (rt *runtime) rebuild(ctx context.Context, arg string) (*balance.Result, error) {
	paths, err := balance.ResolvePaths(arg, rulesFlag, rt.cfg.Balance)
	if err != nil {
		return nil, err
	}
	return rt.service.FixFiles(ctx, paths)
}

// record stores the run, logging instead of failing when it cannot.
func (rt *runtime) record(ctx context.Context, res *balance.Result, data []byte, published string) {
	run, err := rt.service.Record(ctx, res, data, published)
	if err != nil {
		rt.log.Warn("Failed to record run", zap.Error(err))
		return
	}
	if run != nil {
		rt.log.Debug("Recorded run", zap.String("id", run.ID))
	}
}

func (rt *runtime) Close() {
	_ = rt.log.Sync()
	if rt.db == nil {
		return
	}
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
