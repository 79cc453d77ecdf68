package services

import (
	"context"
	"fmt"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

// TriggerSwap emits one conversion instruction for every non-settlement
// balance held by the reward account. Only the hub contract may call it.
// No local state is mutated; the converted funds are accounted for the next
// time the global index is updated.
func (s *Service) TriggerSwap(ctx context.Context, sender string) (*types.InvocationResult, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.assertSender(sender, cfg.HubContract); err != nil {
		return nil, err
	}

	balances, err := s.ledger.GetAllBalances(ctx, s.contractAddress())
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}

	result := &types.InvocationResult{
		Attributes: []types.Attribute{
			types.Attr("action", "swap"),
		},
	}

	for _, coin := range balances {
		if coin.Denom == cfg.RewardDenom {
			continue
		}

		result.Swaps = append(result.Swaps, types.SwapInstruction{
			Trader:    s.contractAddress(),
			OfferCoin: coin,
			AskDenom:  cfg.RewardDenom,
		})
	}

	return result, nil
}
