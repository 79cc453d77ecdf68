package ledgerclient

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/r-amiri/anchor-basset-reward/internal/config"
)

// LedgerClient reads account balances from the host chain over gRPC.
// The transfer-tax parameters are operator-supplied through config because
// they are chain-specific; they are exposed behind the same interface so
// callers treat them as a ledger query.
type LedgerClient struct {
	bank    banktypes.QueryClient
	cfg     *config.LedgerConfig
	taxRate sdkmath.LegacyDec
	taxCaps map[string]sdkmath.Int
}

func NewLedgerClient(cfg *config.LedgerConfig) (*LedgerClient, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger grpc client: %w", err)
	}

	// Validate guarantees these parse.
	taxCaps := make(map[string]sdkmath.Int, len(cfg.TaxCaps))
	for denom, cap := range cfg.TaxCaps {
		amount, _ := sdkmath.NewIntFromString(cap)
		taxCaps[denom] = amount
	}

	return &LedgerClient{
		bank:    banktypes.NewQueryClient(conn),
		cfg:     cfg,
		taxRate: sdkmath.LegacyMustNewDecFromStr(cfg.TaxRate),
		taxCaps: taxCaps,
	}, nil
}

func (c *LedgerClient) GetBalance(ctx context.Context, address, denom string) (sdk.Coin, error) {
	callForBalance := func() (*banktypes.QueryBalanceResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		return c.bank.Balance(ctx, &banktypes.QueryBalanceRequest{
			Address: address,
			Denom:   denom,
		})
	}

	resp, err := clientCallWithRetry(callForBalance, c.cfg)
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to query balance of %s: %w", denom, err)
	}
	if resp.Balance == nil {
		return sdk.Coin{Denom: denom, Amount: sdkmath.ZeroInt()}, nil
	}
	return *resp.Balance, nil
}

func (c *LedgerClient) GetAllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	callForBalances := func() (*banktypes.QueryAllBalancesResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		return c.bank.AllBalances(ctx, &banktypes.QueryAllBalancesRequest{
			Address: address,
		})
	}

	resp, err := clientCallWithRetry(callForBalances, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to query all balances: %w", err)
	}
	return resp.Balances, nil
}

func (c *LedgerClient) GetTaxRate(ctx context.Context) (sdkmath.LegacyDec, error) {
	return c.taxRate, nil
}

func (c *LedgerClient) GetTaxCap(ctx context.Context, denom string) (sdkmath.Int, bool, error) {
	cap, found := c.taxCaps[denom]
	if !found {
		return sdkmath.Int{}, false, nil
	}
	return cap, true, nil
}

func clientCallWithRetry[T any](
	call retry.RetryableFuncWithData[*T], cfg *config.LedgerConfig,
) (*T, error) {
	result, err := retry.DoWithData(call, retry.Attempts(cfg.MaxRetryTimes), retry.Delay(cfg.RetryInterval), retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call the ledger grpc client")
		}))

	if err != nil {
		return nil, err
	}
	return result, nil
}
