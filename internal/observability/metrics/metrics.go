package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	invocationDurationHistogram *prometheus.HistogramVec
	ledgerClientLatency         *prometheus.HistogramVec
	instructionPublishErrors    prometheus.Counter
	globalIndexGauge            prometheus.Gauge
	totalBondedGauge            prometheus.Gauge
	claimedRewardsCounter       prometheus.Counter
	lidoFeeCounter              prometheus.Counter
	dbLatency                   *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	metricsRouter.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	invocationDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invocation_duration_seconds",
			Help:    "Histogram of execute invocation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	ledgerClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_client_latency_seconds",
			Help:    "Histogram of ledger client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	instructionPublishErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "instruction_publish_error_count",
			Help: "The total number of errors when publishing outbound instructions",
		},
	)

	globalIndexGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reward_global_index",
			Help: "Last value of the cumulative per-unit reward index",
		},
	)

	totalBondedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reward_total_bonded",
			Help: "Total bonded principal tracked by the accrual ledger",
		},
	)

	claimedRewardsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reward_claimed_total",
			Help: "Cumulative claimed rewards realized by index updates (net of fee)",
		},
	)

	lidoFeeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reward_lido_fee_total",
			Help: "Cumulative protocol fee extracted from claimed rewards",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		invocationDurationHistogram,
		ledgerClientLatency,
		instructionPublishErrors,
		globalIndexGauge,
		totalBondedGauge,
		claimedRewardsCounter,
		lidoFeeCounter,
		dbLatency,
	)
}

func RecordInvocationDuration(d time.Duration, operation string, failure bool) {
	if invocationDurationHistogram == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	invocationDurationHistogram.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordLedgerClientLatency(d time.Duration, method string, failure bool) {
	if ledgerClientLatency == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	ledgerClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func IncInstructionPublishFailures() {
	if instructionPublishErrors == nil {
		return
	}
	instructionPublishErrors.Inc()
}

func RecordGlobalIndex(index float64) {
	if globalIndexGauge == nil {
		return
	}
	globalIndexGauge.Set(index)
}

func RecordTotalBonded(total float64) {
	if totalBondedGauge == nil {
		return
	}
	totalBondedGauge.Set(total)
}

func AddClaimedRewards(amount float64) {
	if claimedRewardsCounter == nil {
		return
	}
	claimedRewardsCounter.Add(amount)
}

func AddLidoFee(amount float64) {
	if lidoFeeCounter == nil {
		return
	}
	lidoFeeCounter.Add(amount)
}
