package services

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/r-amiri/anchor-basset-reward/internal/config"
	"github.com/r-amiri/anchor-basset-reward/internal/db"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

const testPrefix = "terra"

type fakeDb struct {
	cfg       *types.Config
	state     *types.State
	updateErr error
	updates   int
}

func (f *fakeDb) Ping(ctx context.Context) error {
	return nil
}

func (f *fakeDb) SaveConfig(ctx context.Context, cfg *types.Config) error {
	if f.cfg != nil {
		return &db.DuplicateKeyError{Key: "config", Message: "config record already initialized"}
	}
	copied := *cfg
	f.cfg = &copied
	return nil
}

func (f *fakeDb) GetConfig(ctx context.Context) (*types.Config, error) {
	if f.cfg == nil {
		return nil, &db.NotFoundError{Key: "config", Message: "config record not found"}
	}
	copied := *f.cfg
	return &copied, nil
}

func (f *fakeDb) InitState(ctx context.Context, state *types.State) error {
	if f.state != nil {
		return &db.DuplicateKeyError{Key: "state", Message: "state record already initialized"}
	}
	copied := *state
	f.state = &copied
	return nil
}

func (f *fakeDb) GetState(ctx context.Context) (*types.State, error) {
	if f.state == nil {
		return nil, &db.NotFoundError{Key: "state", Message: "state record not found"}
	}
	copied := *f.state
	return &copied, nil
}

func (f *fakeDb) UpdateState(ctx context.Context, state *types.State) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.state == nil {
		return &db.NotFoundError{Key: "state", Message: "state record not found"}
	}
	copied := *state
	f.state = &copied
	f.updates++
	return nil
}

type fakeLedger struct {
	balances   sdk.Coins
	balanceErr error
	taxRate    sdkmath.LegacyDec
	taxCaps    map[string]sdkmath.Int
}

func (f *fakeLedger) GetBalance(ctx context.Context, address, denom string) (sdk.Coin, error) {
	if f.balanceErr != nil {
		return sdk.Coin{}, f.balanceErr
	}
	for _, coin := range f.balances {
		if coin.Denom == denom {
			return coin, nil
		}
	}
	return sdk.Coin{Denom: denom, Amount: sdkmath.ZeroInt()}, nil
}

func (f *fakeLedger) GetAllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	if f.balanceErr != nil {
		return nil, f.balanceErr
	}
	return f.balances, nil
}

func (f *fakeLedger) GetTaxRate(ctx context.Context) (sdkmath.LegacyDec, error) {
	return f.taxRate, nil
}

func (f *fakeLedger) GetTaxCap(ctx context.Context, denom string) (sdkmath.Int, bool, error) {
	cap, found := f.taxCaps[denom]
	if !found {
		return sdkmath.Int{}, false, nil
	}
	return cap, true, nil
}

type fakeEmitter struct {
	swaps       []types.SwapInstruction
	transfers   []types.TransferInstruction
	swapErr     error
	transferErr error
}

func (f *fakeEmitter) EmitSwap(ctx context.Context, instruction types.SwapInstruction) error {
	if f.swapErr != nil {
		return f.swapErr
	}
	f.swaps = append(f.swaps, instruction)
	return nil
}

func (f *fakeEmitter) EmitTransfer(ctx context.Context, instruction types.TransferInstruction) error {
	if f.transferErr != nil {
		return f.transferErr
	}
	f.transfers = append(f.transfers, instruction)
	return nil
}

type fixture struct {
	svc      *Service
	db       *fakeDb
	ledger   *fakeLedger
	emitter  *fakeEmitter
	contract string
	hub      string
	owner    string
	feeAddr  string
	receiver string
	stranger string
}

func addr(t *testing.T, seed byte) string {
	t.Helper()
	raw := make([]byte, 20)
	raw[0] = seed
	encoded, err := sdk.Bech32ifyAddressBytes(testPrefix, raw)
	require.NoError(t, err)
	return encoded
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		contract: addr(t, 1),
		hub:      addr(t, 2),
		owner:    addr(t, 3),
		feeAddr:  addr(t, 4),
		receiver: addr(t, 5),
		stranger: addr(t, 6),
	}

	f.db = &fakeDb{}
	f.ledger = &fakeLedger{
		taxRate: sdkmath.LegacyZeroDec(),
		taxCaps: map[string]sdkmath.Int{},
	}
	f.emitter = &fakeEmitter{}

	cfg := &config.Config{
		Reward: config.RewardConfig{
			AddressPrefix:   testPrefix,
			ContractAddress: f.contract,
			Owner:           f.owner,
			HubContract:     f.hub,
			RewardDenom:     "uusd",
			LidoFeeRate:     "0.10",
			LidoFeeAddress:  f.feeAddr,
		},
	}

	f.svc = NewService(cfg, f.db, f.ledger, f.emitter)
	return f
}

// initContract seeds config and state records the way the init-contract
// command does.
func (f *fixture) initContract(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.db.SaveConfig(ctx, &types.Config{
		Owner:          f.owner,
		HubContract:    f.hub,
		RewardDenom:    "uusd",
		LidoFeeRate:    sdkmath.LegacyMustNewDecFromStr("0.10"),
		LidoFeeAddress: f.feeAddr,
	}))
	require.NoError(t, f.db.InitState(ctx, types.NewInitialState()))
}

func (f *fixture) setState(t *testing.T, total, prev int64, index string) {
	t.Helper()
	f.db.state = &types.State{
		TotalBalance:      sdkmath.NewInt(total),
		PrevRewardBalance: sdkmath.NewInt(prev),
		GlobalIndex:       sdkmath.LegacyMustNewDecFromStr(index),
	}
}

func (f *fixture) setBalance(denom string, amount int64) {
	coins := sdk.Coins{}
	replaced := false
	for _, coin := range f.ledger.balances {
		if coin.Denom == denom {
			coins = append(coins, sdk.Coin{Denom: denom, Amount: sdkmath.NewInt(amount)})
			replaced = true
			continue
		}
		coins = append(coins, coin)
	}
	if !replaced {
		coins = append(coins, sdk.Coin{Denom: denom, Amount: sdkmath.NewInt(amount)})
	}
	f.ledger.balances = coins
}
