package rewardmath

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

func TestCheckedSub(t *testing.T) {
	t.Run("positive delta", func(t *testing.T) {
		res, err := CheckedSub(sdkmath.NewInt(1000), sdkmath.NewInt(100))
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(900), res)
	})

	t.Run("zero delta", func(t *testing.T) {
		res, err := CheckedSub(sdkmath.NewInt(910), sdkmath.NewInt(910))
		require.NoError(t, err)
		assert.True(t, res.IsZero())
	})

	t.Run("underflow", func(t *testing.T) {
		_, err := CheckedSub(sdkmath.NewInt(99), sdkmath.NewInt(100))
		require.Error(t, err)
		assert.True(t, types.IsArithmeticUnderflowError(err))
	})
}

func TestComputeLidoFee(t *testing.T) {
	tests := []struct {
		name     string
		claimed  int64
		rate     string
		expected int64
	}{
		{"ten percent", 900, "0.10", 90},
		{"truncates toward zero", 999, "0.10", 99},
		{"zero rate", 900, "0", 0},
		{"full rate", 900, "1", 900},
		{"zero claimed", 0, "0.05", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := sdkmath.LegacyMustNewDecFromStr(tt.rate)
			fee := ComputeLidoFee(sdkmath.NewInt(tt.claimed), rate)
			assert.Equal(t, sdkmath.NewInt(tt.expected), fee)
		})
	}
}

func TestDeductTax(t *testing.T) {
	taxRate := sdkmath.LegacyMustNewDecFromStr("0.005")

	t.Run("rate binding", func(t *testing.T) {
		coin := sdk.Coin{Denom: "uusd", Amount: sdkmath.NewInt(1005)}
		net := DeductTax(coin, taxRate, sdkmath.NewInt(1_000_000))
		// 1005 / 1.005 = 1000, tax = 5
		assert.Equal(t, sdkmath.NewInt(1000), net.Amount)
		assert.Equal(t, "uusd", net.Denom)
	})

	t.Run("cap binding", func(t *testing.T) {
		coin := sdk.Coin{Denom: "uusd", Amount: sdkmath.NewInt(1_000_000)}
		net := DeductTax(coin, taxRate, sdkmath.NewInt(100))
		assert.Equal(t, sdkmath.NewInt(999_900), net.Amount)
	})

	t.Run("zero rate", func(t *testing.T) {
		coin := sdk.Coin{Denom: "uusd", Amount: sdkmath.NewInt(90)}
		net := DeductTax(coin, sdkmath.LegacyZeroDec(), sdkmath.NewInt(1_000_000))
		assert.Equal(t, sdkmath.NewInt(90), net.Amount)
	})
}

func TestIndexDelta(t *testing.T) {
	t.Run("exact ratio", func(t *testing.T) {
		delta := IndexDelta(sdkmath.NewInt(810), sdkmath.NewInt(1000))
		assert.Equal(t, sdkmath.LegacyMustNewDecFromStr("0.81"), delta)
	})

	t.Run("repeating fraction floors at storage scale", func(t *testing.T) {
		delta := IndexDelta(sdkmath.NewInt(1), sdkmath.NewInt(3))
		assert.Equal(t, sdkmath.LegacyMustNewDecFromStr("0.333333333333333333"), delta)
	})

	t.Run("zero claimed", func(t *testing.T) {
		delta := IndexDelta(sdkmath.ZeroInt(), sdkmath.NewInt(1000))
		assert.True(t, delta.IsZero())
	})
}
