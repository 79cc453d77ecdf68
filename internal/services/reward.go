package services

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
	"github.com/r-amiri/anchor-basset-reward/pkg"
)

// SendReward emits a single unconditional transfer of amount to receiver.
// This path belongs to the simple companion operating mode: it is authorized
// by the owner principal, not the hub, and touches no accrual state.
func (s *Service) SendReward(ctx context.Context, sender, receiver string, amount sdkmath.Int) (*types.InvocationResult, error) {
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

	if err := s.assertSender(sender, cfg.Owner); err != nil {
		return nil, err
	}

	if err := pkg.ValidateAddress(receiver, s.cfg.Reward.AddressPrefix); err != nil {
		return nil, fmt.Errorf("invalid receiver %q: %w", receiver, err)
	}

	return &types.InvocationResult{
		Transfers: []types.TransferInstruction{
			{
				FromAddress: s.contractAddress(),
				ToAddress:   receiver,
				Amount:      sdk.Coin{Denom: cfg.RewardDenom, Amount: amount},
			},
		},
		Attributes: []types.Attribute{
			types.Attr("action", "send_reward"),
			types.Attr("from", s.contractAddress()),
			types.Attr("amount", amount.String()),
		},
	}, nil
}
