package db

import (
	"context"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	SaveConfig(ctx context.Context, cfg *types.Config) error
	GetConfig(ctx context.Context) (*types.Config, error)
	InitState(ctx context.Context, state *types.State) error
	GetState(ctx context.Context) (*types.State, error)
	UpdateState(ctx context.Context, state *types.State) error
}
