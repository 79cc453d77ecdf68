package ledgerclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/r-amiri/anchor-basset-reward/internal/observability/metrics"
)

type ledgerClientWithMetrics struct {
	ledger LedgerInterface
}

func NewLedgerClientWithMetrics(ledger LedgerInterface) *ledgerClientWithMetrics {
	return &ledgerClientWithMetrics{ledger: ledger}
}

func (l *ledgerClientWithMetrics) GetBalance(ctx context.Context, address, denom string) (sdk.Coin, error) {
	return runLedgerMethodWithMetrics("GetBalance", func() (sdk.Coin, error) {
		return l.ledger.GetBalance(ctx, address, denom)
	})
}

func (l *ledgerClientWithMetrics) GetAllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	return runLedgerMethodWithMetrics("GetAllBalances", func() (sdk.Coins, error) {
		return l.ledger.GetAllBalances(ctx, address)
	})
}

func (l *ledgerClientWithMetrics) GetTaxRate(ctx context.Context) (sdkmath.LegacyDec, error) {
	return runLedgerMethodWithMetrics("GetTaxRate", func() (sdkmath.LegacyDec, error) {
		return l.ledger.GetTaxRate(ctx)
	})
}

func (l *ledgerClientWithMetrics) GetTaxCap(ctx context.Context, denom string) (sdkmath.Int, bool, error) {
	startTime := time.Now()
	cap, found, err := l.ledger.GetTaxCap(ctx, denom)
	metrics.RecordLedgerClientLatency(time.Since(startTime), "GetTaxCap", err != nil)
	return cap, found, err
}

func runLedgerMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordLedgerClientLatency(duration, method, err != nil)
	return v, err
}
