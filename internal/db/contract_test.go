//go:build integration

package db_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r-amiri/anchor-basset-reward/internal/config"
	"github.com/r-amiri/anchor-basset-reward/internal/db"
	"github.com/r-amiri/anchor-basset-reward/internal/db/model"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
	"github.com/r-amiri/anchor-basset-reward/pkg"
)

const (
	mongoUsername = "user"
	mongoPassword = "password"
	mongoDatabase = "test-database"

	// this version corresponds to docker tag for mongodb
	// it should be in sync with mongo version used in production
	mongoVersion = "7.0.5"
)

var testDB *db.Database

func TestMain(m *testing.M) {
	dbConfig, cleanup, err := setupMongoContainer()
	if err != nil {
		log.Fatalf("failed to setup mongo container: %v", err)
	}

	err = model.Setup(context.Background(), dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to init mongo database: %v", err)
	}

	testDB, err = setupClient(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup client: %v", err)
	}

	code := m.Run()
	cleanup()

	os.Exit(code)
}

func setupMongoContainer() (*config.DbConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	// there can be only 1 container with the same name, so we add
	// random string in the end in case there is still old container running
	containerName := "mongo-integration-tests-db-" + pkg.RandString(3)
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       containerName,
		Repository: "mongo",
		Tag:        mongoVersion,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + mongoUsername,
			"MONGO_INITDB_ROOT_PASSWORD=" + mongoPassword,
			"MONGO_INITDB_DATABASE=" + mongoDatabase,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		err := pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	hostPort := resource.GetPort("27017/tcp")

	return &config.DbConfig{
		Username: mongoUsername,
		Password: mongoPassword,
		DbName:   mongoDatabase,
		Address:  fmt.Sprintf("mongodb://localhost:%s/", hostPort),
	}, cleanup, nil
}

func setupClient(cfg *config.DbConfig) (*db.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.New(ctx, *cfg)
}

func testConfigRecord() *types.Config {
	return &types.Config{
		Owner:          "terra1owner",
		HubContract:    "terra1hub",
		RewardDenom:    "uusd",
		LidoFeeRate:    sdkmath.LegacyMustNewDecFromStr("0.05"),
		LidoFeeAddress: "terra1fee",
	}
}

func TestConfigRecord(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.GetConfig(ctx)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	cfg := testConfigRecord()
	require.NoError(t, testDB.SaveConfig(ctx, cfg))

	loaded, err := testDB.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	err = testDB.SaveConfig(ctx, cfg)
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))
}

func TestStateRecord(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.GetState(ctx)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	err = testDB.UpdateState(ctx, types.NewInitialState())
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	require.NoError(t, testDB.InitState(ctx, types.NewInitialState()))

	loaded, err := testDB.GetState(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.TotalBalance.IsZero())
	assert.True(t, loaded.GlobalIndex.IsZero())

	updated := &types.State{
		TotalBalance:      sdkmath.NewInt(1000),
		PrevRewardBalance: sdkmath.NewInt(910),
		GlobalIndex:       sdkmath.LegacyMustNewDecFromStr("0.81"),
	}
	require.NoError(t, testDB.UpdateState(ctx, updated))

	loaded, err = testDB.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)

	err = testDB.InitState(ctx, types.NewInitialState())
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))
}
