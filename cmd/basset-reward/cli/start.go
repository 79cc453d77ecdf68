package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/r-amiri/anchor-basset-reward/internal/clients/ledgerclient"
	"github.com/r-amiri/anchor-basset-reward/internal/config"
	"github.com/r-amiri/anchor-basset-reward/internal/db"
	dbmodel "github.com/r-amiri/anchor-basset-reward/internal/db/model"
	"github.com/r-amiri/anchor-basset-reward/internal/observability/metrics"
	"github.com/r-amiri/anchor-basset-reward/internal/observability/tracing"
	"github.com/r-amiri/anchor-basset-reward/internal/queue"
	"github.com/r-amiri/anchor-basset-reward/internal/services"
)

func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Starts the bAsset reward accounting service",
		Args:  cobra.ExactArgs(0),
		RunE:  start,
	}

	return cmd
}

func start(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up reward db model")
	}

	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var ledgerClient ledgerclient.LedgerInterface
	ledgerClient, err = ledgerclient.NewLedgerClient(&cfg.Ledger)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating ledger client")
	}
	ledgerClient = ledgerclient.NewLedgerClientWithMetrics(ledgerClient)

	queueManager, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating queue manager")
	}
	defer queueManager.Shutdown()

	service := services.NewService(cfg, dbClient, ledgerClient, queueManager)

	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	return queueManager.Start(ctx, service.ProcessExecuteMsg)
}
