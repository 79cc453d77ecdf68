package services

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/r-amiri/anchor-basset-reward/internal/observability/metrics"
	"github.com/r-amiri/anchor-basset-reward/internal/rewardmath"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

// UpdateGlobalIndex realizes the settlement-balance growth since the last
// update as index progress: it extracts the protocol fee from the claimed
// rewards and advances the per-unit index by the remainder over the bonded
// principal. Only the hub contract may call it.
func (s *Service) UpdateGlobalIndex(ctx context.Context, sender string) (*types.InvocationResult, error) {
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

	if state.TotalBalance.IsZero() {
		return nil, &types.InvalidStateError{Reason: "no bonded principal"}
	}

	currentBalance, err := s.ledger.GetBalance(ctx, s.contractAddress(), cfg.RewardDenom)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s balance: %w", cfg.RewardDenom, err)
	}

	// A settlement balance below the snapshot means funds left the account
	// outside this accounting model; that is unrecoverable, not clamped.
	claimedRewards, err := rewardmath.CheckedSub(currentBalance.Amount, state.PrevRewardBalance)
	if err != nil {
		return nil, err
	}

	lidoFee := rewardmath.ComputeLidoFee(claimedRewards, cfg.LidoFeeRate)
	claimedRewards, err = rewardmath.CheckedSub(claimedRewards, lidoFee)
	if err != nil {
		return nil, err
	}

	// The declared transfer amount is net of the ledger transfer tax, but the
	// ledger debits the sender by the gross amount, so the snapshot below
	// subtracts the pre-tax fee.
	netFee, err := s.deductTax(ctx, sdk.Coin{Denom: cfg.RewardDenom, Amount: lidoFee})
	if err != nil {
		return nil, err
	}

	state.PrevRewardBalance, err = rewardmath.CheckedSub(currentBalance.Amount, lidoFee)
	if err != nil {
		return nil, err
	}

	state.GlobalIndex = state.GlobalIndex.Add(
		rewardmath.IndexDelta(claimedRewards, state.TotalBalance),
	)

	if err := s.db.UpdateState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to persist state record: %w", err)
	}

	metrics.RecordGlobalIndex(state.GlobalIndex.MustFloat64())
	metrics.AddClaimedRewards(sdkmath.LegacyNewDecFromInt(claimedRewards).MustFloat64())
	metrics.AddLidoFee(sdkmath.LegacyNewDecFromInt(lidoFee).MustFloat64())

	return &types.InvocationResult{
		Transfers: []types.TransferInstruction{
			{
				FromAddress: s.contractAddress(),
				ToAddress:   cfg.LidoFeeAddress,
				Amount:      netFee,
			},
		},
		Attributes: []types.Attribute{
			types.Attr("action", "update_global_index"),
			types.Attr("claimed_rewards", claimedRewards.String()),
			types.Attr("lido_fee", lidoFee.String()),
		},
	}, nil
}

// deductTax converts a gross amount into what the recipient receives after
// the ledger burns its transfer tax.
func (s *Service) deductTax(ctx context.Context, coin sdk.Coin) (sdk.Coin, error) {
	taxRate, err := s.ledger.GetTaxRate(ctx)
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to query tax rate: %w", err)
	}

	taxCap, found, err := s.ledger.GetTaxCap(ctx, coin.Denom)
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to query tax cap for %s: %w", coin.Denom, err)
	}
	if !found {
		// no cap defined: the tax is bounded by the amount itself
		taxCap = coin.Amount
	}

	return rewardmath.DeductTax(coin, taxRate, taxCap), nil
}
