package services

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/r-amiri/anchor-basset-reward/internal/observability/metrics"
	"github.com/r-amiri/anchor-basset-reward/internal/rewardmath"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

// IncreaseBalance raises the bonded principal tracked by the accrual ledger.
// The hub calls it as principal is bonded on behalf of participants.
func (s *Service) IncreaseBalance(ctx context.Context, sender string, amount sdkmath.Int) (*types.InvocationResult, error) {
	state, err := s.authorizeBalanceChange(ctx, sender, amount)
	if err != nil {
		return nil, err
	}

	state.TotalBalance = state.TotalBalance.Add(amount)

	if err := s.db.UpdateState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist state record: %w", err)
	}

	metrics.RecordTotalBonded(sdkmath.LegacyNewDecFromInt(state.TotalBalance).MustFloat64())

	return &types.InvocationResult{
		Attributes: []types.Attribute{
			types.Attr("action", "increase_balance"),
			types.Attr("amount", amount.String()),
		},
	}, nil
}

// DecreaseBalance lowers the bonded principal. Unbonding more than is bonded
// is an accounting inconsistency and fails the same way as any other
// checked subtraction.
func (s *Service) DecreaseBalance(ctx context.Context, sender string, amount sdkmath.Int) (*types.InvocationResult, error) {
	state, err := s.authorizeBalanceChange(ctx, sender, amount)
	if err != nil {
		return nil, err
	}

	state.TotalBalance, err = rewardmath.CheckedSub(state.TotalBalance, amount)
	if err != nil {
		return nil, err
	}

	if err := s.db.UpdateState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist state record: %w", err)
	}

	metrics.RecordTotalBonded(sdkmath.LegacyNewDecFromInt(state.TotalBalance).MustFloat64())

	return &types.InvocationResult{
		Attributes: []types.Attribute{
			types.Attr("action", "decrease_balance"),
			types.Attr("amount", amount.String()),
		},
	}, nil
}

func (s *Service) authorizeBalanceChange(ctx context.Context, sender string, amount sdkmath.Int) (*types.State, error) {
	if amount.IsNil() {
		return nil, &types.InvalidAmountError{Amount: ""}
	}
	if !amount.IsPositive() {
		return nil, &types.InvalidAmountError{Amount: amount.String()}
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.assertSender(sender, cfg.HubContract); err != nil {
		return nil, err
	}

	return state, nil
}
