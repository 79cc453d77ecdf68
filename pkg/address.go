package pkg

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func ValidateAddress(address, prefix string) error {
	bz, err := sdk.GetFromBech32(address, prefix)
	if err != nil {
		return err
	}

	return sdk.VerifyAddressFormat(bz)
}

// CanonicalEqual compares two bech32 addresses by their decoded raw bytes so
// that formatting differences cannot bypass an authorization check.
func CanonicalEqual(a, b, prefix string) (bool, error) {
	rawA, err := sdk.GetFromBech32(a, prefix)
	if err != nil {
		return false, err
	}
	rawB, err := sdk.GetFromBech32(b, prefix)
	if err != nil {
		return false, err
	}

	return bytes.Equal(rawA, rawB), nil
}
