// Package app is the composition root: it wires config, storage, services,
// background jobs, and the HTTP router together. Bootstrap stays
// orchestration-only; behavior lives in the wired packages.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"oaflow.io/oaflow/internal/api/handlers"
	"oaflow.io/oaflow/internal/api/middleware"
	"oaflow.io/oaflow/internal/attachments"
	"oaflow.io/oaflow/internal/catalog"
	"oaflow.io/oaflow/internal/config"
	"oaflow.io/oaflow/internal/infrastructure"
	"oaflow.io/oaflow/internal/jobs"
	"oaflow.io/oaflow/internal/notification"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/pkg/worker"
	"oaflow.io/oaflow/internal/workflow"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools

	seeder *catalog.Seeder
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if err := db.AutoMigrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		SeedPoolSize:    cfg.Worker.SeedPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(db.EntClient, cfg.River.NotificationRetention))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	// Notification retention: run daily and once on startup so a long-idle
	// deployment prunes immediately.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	workflowSvc := workflow.NewService(db.EntClient)
	catalogSvc := catalog.NewService(db.EntClient)
	notificationSvc := notification.NewService(db.EntClient)
	attachmentStore := attachments.NewStore(db.EntClient, cfg.Attachments)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Auth.JWTSecret),
		Issuer:     cfg.Auth.Issuer,
		ExpiresIn:  cfg.Auth.TokenLifetime,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:     db.EntClient,
		Pool:          db.Pool,
		JWTCfg:        jwtCfg,
		Workflows:     workflowSvc,
		Catalog:       catalogSvc,
		Notifications: notificationSvc,
		Attachments:   attachmentStore,
	})

	app := &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg.SigningKey),
		DB:     db,
		Pools:  pools,
	}
	if cfg.Catalog.SeedOnBoot {
		app.seeder = catalog.NewSeeder(db.EntClient, pools)
	}
	return app, nil
}

// Start starts background services and runs the boot-time catalog seed.
func (a *Application) Start(ctx context.Context) error {
	if a.seeder != nil {
		if err := a.seeder.Seed(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("Workflow catalog seeded")
	}

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("River client started, jobs will now be consumed")
	}
	return nil
}
