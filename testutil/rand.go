package testutil

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomDenom generates a random lowercase denom like "ukrw"
func RandomDenom() string {
	return "u" + gofakeit.LetterN(3)
}

// RandomAddress generates a random bech32 address under the given prefix
func RandomAddress(prefix string) (string, error) {
	raw := []byte(gofakeit.LetterN(20))
	return sdk.Bech32ifyAddressBytes(prefix, raw)
}

// RandomAmount generates a random positive amount up to the given bound
func RandomAmount(max int64) sdkmath.Int {
	return sdkmath.NewInt(int64(gofakeit.IntRange(1, int(max))))
}
