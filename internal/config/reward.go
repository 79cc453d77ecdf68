package config

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
	"github.com/r-amiri/anchor-basset-reward/pkg"
)

type RewardConfig struct {
	// AddressPrefix is the bech32 human-readable prefix of the host chain.
	AddressPrefix string `mapstructure:"address-prefix"`
	// ContractAddress is the reward account whose balances accrue rewards and
	// from which fee and reward transfers are sent.
	ContractAddress string `mapstructure:"contract-address"`
	Owner           string `mapstructure:"owner"`
	HubContract     string `mapstructure:"hub-contract"`
	RewardDenom     string `mapstructure:"reward-denom"`
	LidoFeeRate     string `mapstructure:"lido-fee-rate"`
	LidoFeeAddress  string `mapstructure:"lido-fee-address"`
}

func (cfg *RewardConfig) Validate() error {
	if cfg.AddressPrefix == "" {
		return fmt.Errorf("address prefix is required")
	}
	for name, addr := range map[string]string{
		"contract-address": cfg.ContractAddress,
		"owner":            cfg.Owner,
		"hub-contract":     cfg.HubContract,
		"lido-fee-address": cfg.LidoFeeAddress,
	} {
		if addr == "" {
			return fmt.Errorf("%s is required", name)
		}
		if err := pkg.ValidateAddress(addr, cfg.AddressPrefix); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, addr, err)
		}
	}
	if cfg.RewardDenom == "" {
		return fmt.Errorf("reward denom is required")
	}

	rate, err := sdkmath.LegacyNewDecFromStr(cfg.LidoFeeRate)
	if err != nil {
		return fmt.Errorf("invalid lido fee rate %q: %w", cfg.LidoFeeRate, err)
	}
	if rate.IsNegative() || rate.GT(sdkmath.LegacyOneDec()) {
		return fmt.Errorf("lido fee rate must be within [0, 1], got %s", rate)
	}

	return nil
}

// ContractConfig returns the config record seeded into the store at
// initialization. Validate must have succeeded first.
func (cfg *RewardConfig) ContractConfig() *types.Config {
	return &types.Config{
		Owner:          cfg.Owner,
		HubContract:    cfg.HubContract,
		RewardDenom:    cfg.RewardDenom,
		LidoFeeRate:    sdkmath.LegacyMustNewDecFromStr(cfg.LidoFeeRate),
		LidoFeeAddress: cfg.LidoFeeAddress,
	}
}
