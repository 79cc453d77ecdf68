package ledgerclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type LedgerInterface interface {
	// GetBalance returns the balance of a single denomination held by address.
	GetBalance(ctx context.Context, address, denom string) (sdk.Coin, error)
	// GetAllBalances returns every denomination balance held by address.
	GetAllBalances(ctx context.Context, address string) (sdk.Coins, error)
	// GetTaxRate returns the ledger transfer-tax rate.
	GetTaxRate(ctx context.Context) (sdkmath.LegacyDec, error)
	// GetTaxCap returns the transfer-tax cap for denom; found is false when
	// the ledger defines no cap for it.
	GetTaxCap(ctx context.Context, denom string) (cap sdkmath.Int, found bool, err error)
}
