package services

import (
	"context"
	"fmt"

	"github.com/r-amiri/anchor-basset-reward/internal/clients/ledgerclient"
	"github.com/r-amiri/anchor-basset-reward/internal/config"
	"github.com/r-amiri/anchor-basset-reward/internal/db"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
	"github.com/r-amiri/anchor-basset-reward/pkg"
)

// Emitter publishes outbound instructions to their asynchronous collaborators.
// Fulfillment is never observed synchronously; a swap's effect only shows up
// in a later balance query.
type Emitter interface {
	EmitSwap(ctx context.Context, instruction types.SwapInstruction) error
	EmitTransfer(ctx context.Context, instruction types.TransferInstruction) error
}

type Service struct {
	cfg     *config.Config
	db      db.DbInterface
	ledger  ledgerclient.LedgerInterface
	emitter Emitter
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	ledger ledgerclient.LedgerInterface,
	emitter Emitter,
) *Service {
	return &Service{
		cfg:     cfg,
		db:      db,
		ledger:  ledger,
		emitter: emitter,
	}
}

// contractAddress is the reward account all balances are queried for and all
// transfers are sent from.
func (s *Service) contractAddress() string {
	return s.cfg.Reward.ContractAddress
}

// loadConfig reads the config record, mapping a missing record to
// UninitializedError so a read before initialization fails explicitly
// instead of defaulting to zero values.
func (s *Service) loadConfig(ctx context.Context) (*types.Config, error) {
	cfg, err := s.db.GetConfig(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, &types.UninitializedError{Record: "config"}
		}
		return nil, fmt.Errorf("failed to load config record: %w", err)
	}
	return cfg, nil
}

func (s *Service) loadState(ctx context.Context) (*types.State, error) {
	state, err := s.db.GetState(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, &types.UninitializedError{Record: "state"}
		}
		return nil, fmt.Errorf("failed to load state record: %w", err)
	}
	return state, nil
}

// assertSender compares the sender against the authorized principal by
// canonical (decoded) address bytes.
func (s *Service) assertSender(sender, principal string) error {
	equal, err := pkg.CanonicalEqual(sender, principal, s.cfg.Reward.AddressPrefix)
	if err != nil {
		return fmt.Errorf("failed to canonicalize sender %q: %w", sender, err)
	}
	if !equal {
		return &types.UnauthorizedError{Sender: sender}
	}
	return nil
}
