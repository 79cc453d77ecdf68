package config

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

type LedgerConfig struct {
	// GRPCAddr is the host chain gRPC endpoint used for bank balance queries.
	GRPCAddr      string        `mapstructure:"grpc-addr"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// TaxRate and TaxCaps mirror the host ledger's transfer-tax parameters.
	// They affect only the declared amount of outbound transfers.
	TaxRate string            `mapstructure:"tax-rate"`
	TaxCaps map[string]string `mapstructure:"tax-caps"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.GRPCAddr == "" {
		return fmt.Errorf("ledger grpc address is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("ledger timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("ledger max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("ledger retry-interval must be positive")
	}

	rate, err := sdkmath.LegacyNewDecFromStr(cfg.TaxRate)
	if err != nil {
		return fmt.Errorf("invalid tax rate %q: %w", cfg.TaxRate, err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("tax rate must not be negative, got %s", rate)
	}

	for denom, cap := range cfg.TaxCaps {
		amount, ok := sdkmath.NewIntFromString(cap)
		if !ok || amount.IsNegative() {
			return fmt.Errorf("invalid tax cap %q for denom %s", cap, denom)
		}
	}

	return nil
}
