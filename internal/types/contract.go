package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Config is the reward contract configuration record. It is written once at
// initialization and never rewritten afterwards.
type Config struct {
	// Owner is authorized to push unconditional rewards (SendReward).
	Owner string
	// HubContract is authorized to trigger swaps, index updates and bonded
	// balance changes.
	HubContract string
	// RewardDenom is the settlement denomination all rewards are expressed in.
	RewardDenom string
	// LidoFeeRate is the fraction of claimed rewards retained as protocol fee.
	LidoFeeRate sdkmath.LegacyDec
	// LidoFeeAddress receives the protocol fee.
	LidoFeeAddress string
}

func (c *Config) Validate() error {
	if c.Owner == "" {
		return fmt.Errorf("owner address is required")
	}
	if c.HubContract == "" {
		return fmt.Errorf("hub contract address is required")
	}
	if c.RewardDenom == "" {
		return fmt.Errorf("reward denom is required")
	}
	if c.LidoFeeRate.IsNil() || c.LidoFeeRate.IsNegative() || c.LidoFeeRate.GT(sdkmath.LegacyOneDec()) {
		return fmt.Errorf("lido fee rate must be within [0, 1]")
	}
	if c.LidoFeeAddress == "" {
		return fmt.Errorf("lido fee address is required")
	}
	return nil
}

// State is the mutable accrual ledger. The global index updater reads it and
// writes it back only as a whole.
type State struct {
	// TotalBalance is the total bonded principal across all participants.
	TotalBalance sdkmath.Int
	// PrevRewardBalance is the settlement balance held right after the last
	// fee extraction. It is an accounting snapshot, not a committed transfer.
	PrevRewardBalance sdkmath.Int
	// GlobalIndex is the cumulative reward per unit of bonded principal.
	// It never decreases for the lifetime of the contract.
	GlobalIndex sdkmath.LegacyDec
}

// NewInitialState returns the state record written at initialization.
func NewInitialState() *State {
	return &State{
		TotalBalance:      sdkmath.ZeroInt(),
		PrevRewardBalance: sdkmath.ZeroInt(),
		GlobalIndex:       sdkmath.LegacyZeroDec(),
	}
}
