package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SwapInstruction asks the exchange collaborator to convert the full offered
// balance into the ask denomination. Fulfillment is asynchronous; the result
// is only observed as a later balance increase.
type SwapInstruction struct {
	Trader    string   `json:"trader"`
	OfferCoin sdk.Coin `json:"offer_coin"`
	AskDenom  string   `json:"ask_denom"`
}

// TransferInstruction asks the host ledger to move Amount from the contract
// account to Recipient. The ledger debits the sender by the declared amount
// and burns its transfer tax out of what arrives at the recipient.
type TransferInstruction struct {
	FromAddress string   `json:"from_address"`
	ToAddress   string   `json:"to_address"`
	Amount      sdk.Coin `json:"amount"`
}
