package rewardmath

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

// CheckedSub returns a - b, failing with ArithmeticUnderflowError when the
// result would be negative. A negative balance delta means the accounting
// model no longer matches the ledger and must never be clamped.
func CheckedSub(a, b sdkmath.Int) (sdkmath.Int, error) {
	if a.LT(b) {
		return sdkmath.Int{}, &types.ArithmeticUnderflowError{
			Minuend:    a.String(),
			Subtrahend: b.String(),
		}
	}
	return a.Sub(b), nil
}

// ComputeLidoFee returns the protocol fee retained out of claimed rewards.
// The product is truncated toward zero; every evaluator of the same state
// transition must round identically.
func ComputeLidoFee(claimed sdkmath.Int, feeRate sdkmath.LegacyDec) sdkmath.Int {
	return feeRate.MulInt(claimed).TruncateInt()
}

// DeductTax converts a gross transfer amount into the net amount the
// recipient receives after the ledger burns its transfer tax on the way.
// tax = min(amount - amount/(1 + taxRate), taxCap).
func DeductTax(coin sdk.Coin, taxRate sdkmath.LegacyDec, taxCap sdkmath.Int) sdk.Coin {
	kept := sdkmath.LegacyNewDecFromInt(coin.Amount).
		QuoTruncate(sdkmath.LegacyOneDec().Add(taxRate)).
		TruncateInt()
	tax := coin.Amount.Sub(kept)
	if tax.GT(taxCap) {
		tax = taxCap
	}
	return sdk.Coin{Denom: coin.Denom, Amount: coin.Amount.Sub(tax)}
}

// IndexDelta returns claimed / totalBonded at the index storage scale.
// The quotient is computed on the arbitrary-precision mantissa and floored
// once at 18 decimals; the rounding error of this division compounds over
// the contract lifetime and is never corrected retroactively.
func IndexDelta(claimed, totalBonded sdkmath.Int) sdkmath.LegacyDec {
	return sdkmath.LegacyNewDecFromInt(claimed).QuoInt(totalBonded)
}
