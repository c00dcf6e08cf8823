// Package main bootstraps a fresh database: schema migration, the two
// well-known bootstrap accounts, and the workflow catalog. Safe to run
// repeatedly; every step is idempotent.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"oaflow.io/oaflow/ent"
	entuser "oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/internal/catalog"
	"oaflow.io/oaflow/internal/config"
	"oaflow.io/oaflow/internal/infrastructure"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/pkg/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Starting data seeding...")

	if err := seedBootstrapUsers(ctx, db.EntClient); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		SeedPoolSize:    cfg.Worker.SeedPoolSize,
	})
	if err != nil {
		return fmt.Errorf("init worker pools: %w", err)
	}
	defer pools.Shutdown()

	if err := catalog.NewSeeder(db.EntClient, pools).Seed(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedBootstrapUsers creates the admin/admin and user/user accounts on an
// empty database, and repairs the user → admin manager link on an existing
// one.
func seedBootstrapUsers(ctx context.Context, client *ent.Client) error {
	count, err := client.User.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	if count == 0 {
		adminHash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin, err := client.User.Create().
			SetUsername("admin").
			SetPasswordHash(string(adminHash)).
			SetRole("admin").
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		userHash, err := bcrypt.GenerateFromPassword([]byte("user"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash user password: %w", err)
		}
		if _, err := client.User.Create().
			SetUsername("user").
			SetPasswordHash(string(userHash)).
			SetRole("user").
			SetManagerID(admin.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		logger.Info("Seeded bootstrap users",
			zap.String("admin", "admin"),
			zap.String("user", "user"),
		)
		return nil
	}

	// Existing database: make sure the bootstrap user reports to the first
	// admin, so the manager assignee kind resolves in the seed scenarios.
	admin, err := client.User.Query().
		Where(entuser.RoleEQ("admin")).
		Order(ent.Asc(entuser.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("find admin: %w", err)
	}
	if err := client.User.Update().
		Where(entuser.UsernameEQ("user"), entuser.ManagerIDIsNil()).
		SetManagerID(admin.ID).
		Exec(ctx); err != nil {
		return fmt.Errorf("repair manager link: %w", err)
	}
	return nil
}
