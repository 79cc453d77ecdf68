package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/r-amiri/anchor-basset-reward/internal/config"
	"github.com/r-amiri/anchor-basset-reward/internal/db"
	dbmodel "github.com/r-amiri/anchor-basset-reward/internal/db/model"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

func InitContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-contract",
		Short: "Seeds the config and state records from the config file",
		Long: "Writes the immutable config record and a zero state record. " +
			"Fails if the contract has already been initialized.",
		Args: cobra.ExactArgs(0),
		RunE: initContract,
	}

	return cmd
}

func initContract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		log.Fatal().Err(err).Msg("error while setting up reward db model")
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	contractCfg := cfg.Reward.ContractConfig()
	if err := contractCfg.Validate(); err != nil {
		return err
	}

	if err := dbClient.SaveConfig(ctx, contractCfg); err != nil {
		if db.IsDuplicateKeyError(err) {
			return fmt.Errorf("contract is already initialized")
		}
		return err
	}

	if err := dbClient.InitState(ctx, types.NewInitialState()); err != nil {
		if db.IsDuplicateKeyError(err) {
			return fmt.Errorf("contract is already initialized")
		}
		return err
	}

	log.Info().
		Str("hub_contract", contractCfg.HubContract).
		Str("reward_denom", contractCfg.RewardDenom).
		Str("lido_fee_rate", contractCfg.LidoFeeRate.String()).
		Msg("contract initialized")

	return nil
}
