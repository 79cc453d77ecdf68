package db

import (
	"context"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/r-amiri/anchor-basset-reward/internal/db/model"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

const (
	configDocID = "config"
	stateDocID  = "state"
)

// SaveConfig persists the configuration record. The record is written exactly
// once; a second write fails with DuplicateKeyError.
func (db *Database) SaveConfig(ctx context.Context, cfg *types.Config) error {
	doc := &model.ConfigDocument{
		ID:             configDocID,
		Owner:          cfg.Owner,
		HubContract:    cfg.HubContract,
		RewardDenom:    cfg.RewardDenom,
		LidoFeeRate:    cfg.LidoFeeRate.String(),
		LidoFeeAddress: cfg.LidoFeeAddress,
	}

	_, err := db.collection(model.ConfigCollection).InsertOne(ctx, doc)
	// nil check is inside IsDuplicateKeyError
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     configDocID,
			Message: "config record already initialized",
		}
	}
	return err
}

func (db *Database) GetConfig(ctx context.Context) (*types.Config, error) {
	res := db.collection(model.ConfigCollection).FindOne(ctx, bson.M{"_id": configDocID})

	var doc model.ConfigDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     configDocID,
				Message: "config record not found",
			}
		}
		return nil, err
	}

	feeRate, err := sdkmath.LegacyNewDecFromStr(doc.LidoFeeRate)
	if err != nil {
		return nil, fmt.Errorf("corrupt lido fee rate %q: %w", doc.LidoFeeRate, err)
	}

	return &types.Config{
		Owner:          doc.Owner,
		HubContract:    doc.HubContract,
		RewardDenom:    doc.RewardDenom,
		LidoFeeRate:    feeRate,
		LidoFeeAddress: doc.LidoFeeAddress,
	}, nil
}

// InitState writes the initial state record; it fails with DuplicateKeyError
// if the contract has already been initialized.
func (db *Database) InitState(ctx context.Context, state *types.State) error {
	_, err := db.collection(model.StateCollection).InsertOne(ctx, stateDocument(state))
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     stateDocID,
			Message: "state record already initialized",
		}
	}
	return err
}

func (db *Database) GetState(ctx context.Context) (*types.State, error) {
	res := db.collection(model.StateCollection).FindOne(ctx, bson.M{"_id": stateDocID})

	var doc model.StateDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     stateDocID,
				Message: "state record not found",
			}
		}
		return nil, err
	}

	return stateFromDocument(&doc)
}

// UpdateState replaces the whole state record in a single write. Partial
// field commits are not possible through this interface.
func (db *Database) UpdateState(ctx context.Context, state *types.State) error {
	res, err := db.collection(model.StateCollection).
		ReplaceOne(ctx, bson.M{"_id": stateDocID}, stateDocument(state))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     stateDocID,
			Message: "state record not found",
		}
	}
	return nil
}

func stateDocument(state *types.State) *model.StateDocument {
	return &model.StateDocument{
		ID:                stateDocID,
		TotalBalance:      state.TotalBalance.String(),
		PrevRewardBalance: state.PrevRewardBalance.String(),
		GlobalIndex:       state.GlobalIndex.String(),
	}
}

func stateFromDocument(doc *model.StateDocument) (*types.State, error) {
	totalBalance, ok := sdkmath.NewIntFromString(doc.TotalBalance)
	if !ok {
		return nil, fmt.Errorf("corrupt total balance %q", doc.TotalBalance)
	}
	prevRewardBalance, ok := sdkmath.NewIntFromString(doc.PrevRewardBalance)
	if !ok {
		return nil, fmt.Errorf("corrupt prev reward balance %q", doc.PrevRewardBalance)
	}
	globalIndex, err := sdkmath.LegacyNewDecFromStr(doc.GlobalIndex)
	if err != nil {
		return nil, fmt.Errorf("corrupt global index %q: %w", doc.GlobalIndex, err)
	}

	return &types.State{
		TotalBalance:      totalBalance,
		PrevRewardBalance: prevRewardBalance,
		GlobalIndex:       globalIndex,
	}, nil
}
