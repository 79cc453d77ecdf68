package model

const (
	ConfigCollection = "reward_config"
	StateCollection  = "reward_state"
)

// ConfigDocument is the persisted form of the contract configuration record.
// Amounts and rates are stored as decimal strings to keep full precision.
type ConfigDocument struct {
	ID             string `bson:"_id"`
	Owner          string `bson:"owner"`
	HubContract    string `bson:"hub_contract"`
	RewardDenom    string `bson:"reward_denom"`
	LidoFeeRate    string `bson:"lido_fee_rate"`
	LidoFeeAddress string `bson:"lido_fee_address"`
}

// StateDocument is the persisted form of the accrual ledger. It is always
// replaced as a whole; there are no partial field updates.
type StateDocument struct {
	ID                string `bson:"_id"`
	TotalBalance      string `bson:"total_balance"`
	PrevRewardBalance string `bson:"prev_reward_balance"`
	GlobalIndex       string `bson:"global_index"`
}
