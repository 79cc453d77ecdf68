package db

import (
	"context"
	"time"

	"github.com/r-amiri/anchor-basset-reward/internal/observability/metrics"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveConfig(ctx context.Context, cfg *types.Config) error {
	return d.run("SaveConfig", func() error {
		return d.db.SaveConfig(ctx, cfg)
	})
}

func (d *DbWithMetrics) GetConfig(ctx context.Context) (result *types.Config, err error) {
	//nolint:errcheck
	d.run("GetConfig", func() error {
		result, err = d.db.GetConfig(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) InitState(ctx context.Context, state *types.State) error {
	return d.run("InitState", func() error {
		return d.db.InitState(ctx, state)
	})
}

func (d *DbWithMetrics) GetState(ctx context.Context) (result *types.State, err error) {
	//nolint:errcheck
	d.run("GetState", func() error {
		result, err = d.db.GetState(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) UpdateState(ctx context.Context, state *types.State) error {
	return d.run("UpdateState", func() error {
		return d.db.UpdateState(ctx, state)
	})
}

func (d *DbWithMetrics) run(method string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}
