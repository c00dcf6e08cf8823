package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"oaflow.io/oaflow/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestNewPools(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	if pools.General == nil {
		t.Error("General pool is nil")
	}
	if pools.Seed == nil {
		t.Error("Seed pool is nil")
	}
}

func TestPool_Submit(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, PoolConfig{
		GeneralPoolSize: 10,
		SeedPoolSize:    2,
	})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	var executed atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	err = pools.General.Submit(ctx, func(ctx context.Context) {
		executed.Store(true)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	wg.Wait()
	if !executed.Load() {
		t.Error("Task was not executed")
	}
}

func TestPool_Submit_CancelledContext(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	cancelledCtx, cancel := context.WithCancel(ctx)
	cancel()

	err = pools.General.Submit(cancelledCtx, func(ctx context.Context) {
		t.Error("Task should not execute with cancelled context")
	})
	if err != context.Canceled {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestPools_SubmitDetached(t *testing.T) {
	tests := []struct {
		name     string
		poolName string
	}{
		{"general pool", "general"},
		{"seed pool", "seed"},
		{"default fallback", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			pools, err := NewPools(ctx, DefaultPoolConfig())
			if err != nil {
				t.Fatalf("NewPools() error = %v", err)
			}

			var executed atomic.Bool
			var wg sync.WaitGroup
			wg.Add(1)

			err = pools.SubmitDetached(tt.poolName, func(ctx context.Context) {
				executed.Store(true)
				wg.Done()
			})
			if err != nil {
				t.Fatalf("SubmitDetached(%q) error = %v", tt.poolName, err)
			}

			wg.Wait()
			pools.Shutdown()

			if !executed.Load() {
				t.Errorf("SubmitDetached(%q) task was not executed", tt.poolName)
			}
		})
	}
}

func TestPools_Metrics(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, PoolConfig{
		GeneralPoolSize: 10,
		SeedPoolSize:    4,
	})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	metrics := pools.Metrics()
	if metrics == nil {
		t.Fatal("Metrics() returned nil")
	}

	general, ok := metrics["general"].(map[string]int)
	if !ok {
		t.Fatal("general metrics not found or wrong type")
	}
	if general["cap"] != 10 {
		t.Errorf("general cap = %d, want 10", general["cap"])
	}

	seed, ok := metrics["seed"].(map[string]int)
	if !ok {
		t.Fatal("seed metrics not found or wrong type")
	}
	if seed["cap"] != 4 {
		t.Errorf("seed cap = %d, want 4", seed["cap"])
	}
}
