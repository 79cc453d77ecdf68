package consumer

import (
	"context"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

// ExecuteHandler processes one inbound invocation. Its error is terminal for
// that delivery; nothing is retried internally.
type ExecuteHandler func(ctx context.Context, msg *types.ExecuteMsg) (*types.InvocationResult, error)

type ExecuteConsumer interface {
	Start(ctx context.Context, handler ExecuteHandler) error
	Stop() error
}
