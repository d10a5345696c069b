package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/clock"
	"github.com/goodnatureofminers/slotinsight-backend/internal/metrics"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/repository/clickhouse"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/repository/memo"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/repository/postgres"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/requestlog"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/resolver"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/sampler"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/stats"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/solana"
	"github.com/goodnatureofminers/slotinsight-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	requestLogPostgres   = "postgres"
	requestLogClickhouse = "clickhouse"
)

var config struct {
	Addr       string `long:"addr" env:"API_GATEWAY_ADDR" description:"grpc addr" default:":8000"`
	RestAddr   string `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	Production bool   `long:"production" env:"API_GATEWAY_PRODUCTION" description:"use the production logger"`

	PostgresDSN     string        `long:"postgres-dsn" env:"API_GATEWAY_POSTGRES_DSN" description:"PostgreSQL DSN of the block cache" required:"true"`
	DialTimeout     time.Duration `long:"dial-timeout" env:"API_GATEWAY_DIAL_TIMEOUT" description:"store dial timeout" default:"5s"`
	StartupAttempts int           `long:"startup-attempts" env:"API_GATEWAY_STARTUP_ATTEMPTS" description:"store connection attempts at startup" default:"10"`
	StartupDelay    time.Duration `long:"startup-delay" env:"API_GATEWAY_STARTUP_DELAY" description:"delay between store connection attempts" default:"3s"`
	HotCacheSize    int           `long:"hot-cache-size" env:"API_GATEWAY_HOT_CACHE_SIZE" description:"in-process LRU size per record type" default:"4096"`

	RequestLogBackend    string        `long:"request-log-backend" env:"API_GATEWAY_REQUEST_LOG_BACKEND" description:"request log store" choice:"postgres" choice:"clickhouse" default:"postgres"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN for the request log" default:"clickhouse://localhost:9000/default"`
	RequestLogFlushSize  int           `long:"request-log-flush-size" env:"API_GATEWAY_REQUEST_LOG_FLUSH_SIZE" description:"request log batch size" default:"500"`
	RequestLogFlushEvery time.Duration `long:"request-log-flush-interval" env:"API_GATEWAY_REQUEST_LOG_FLUSH_INTERVAL" description:"request log flush interval" default:"2s"`

	RPCURL        string        `long:"rpc-url" env:"API_GATEWAY_RPC_URL" description:"Solana JSON-RPC endpoint" default:"https://api.mainnet-beta.solana.com"`
	RPCTimeout    time.Duration `long:"rpc-timeout" env:"API_GATEWAY_RPC_TIMEOUT" description:"per-call RPC timeout" default:"30s"`
	RPCRPS        int           `long:"rpc-rps" env:"API_GATEWAY_RPC_RPS" description:"RPC requests per second, 0 is unlimited" default:"10"`
	RPCCommitment string        `long:"rpc-commitment" env:"API_GATEWAY_RPC_COMMITMENT" description:"RPC commitment level" default:"confirmed"`
	Cluster       string        `long:"cluster" env:"API_GATEWAY_CLUSTER" description:"cluster label for metrics" default:"mainnet-beta"`

	BatchSize        int `long:"batch-size" env:"API_GATEWAY_BATCH_SIZE" description:"concurrent block resolutions per batch (1..10)" default:"10"`
	ProgramBatchSize int `long:"program-batch-size" env:"API_GATEWAY_PROGRAM_BATCH_SIZE" description:"concurrent program resolutions per batch (1..10)" default:"5"`

	EventStart        uint64 `long:"event-start" env:"API_GATEWAY_EVENT_START" description:"first slot of the default event window" default:"374563500"`
	EventEnd          uint64 `long:"event-end" env:"API_GATEWAY_EVENT_END" description:"end slot (exclusive) of the default event window" default:"374591000"`
	SampleSize        int    `long:"sample-size" env:"API_GATEWAY_SAMPLE_SIZE" description:"default block sample size" default:"100"`
	ProgramSampleSize int    `long:"program-sample-size" env:"API_GATEWAY_PROGRAM_SAMPLE_SIZE" description:"default program sample size" default:"50"`
	MaxSampleSize     int    `long:"max-sample-size" env:"API_GATEWAY_MAX_SAMPLE_SIZE" description:"largest accepted sample size" default:"1000"`
	ProgramID         string `long:"program-id" env:"API_GATEWAY_PROGRAM_ID" description:"default program id" default:"JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"`

	DisruptionDrop    float64 `long:"disruption-drop" env:"API_GATEWAY_DISRUPTION_DROP" description:"drop percent that flags a disruption" default:"10"`
	MediumDrop        float64 `long:"medium-drop" env:"API_GATEWAY_MEDIUM_DROP" description:"drop percent for medium severity" default:"10"`
	HighDrop          float64 `long:"high-drop" env:"API_GATEWAY_HIGH_DROP" description:"drop percent for high severity" default:"30"`
	CriticalDrop      float64 `long:"critical-drop" env:"API_GATEWAY_CRITICAL_DROP" description:"drop percent for critical severity" default:"50"`
	RecoveryTolerance float64 `long:"recovery-tolerance" env:"API_GATEWAY_RECOVERY_TOLERANCE" description:"percent within baseline counted as recovered" default:"5"`

	HealthInterval time.Duration `long:"health-interval" env:"API_GATEWAY_HEALTH_INTERVAL" description:"store health check interval" default:"10s"`
	HealthTimeout  time.Duration `long:"health-timeout" env:"API_GATEWAY_HEALTH_TIMEOUT" description:"store health check timeout" default:"2s"`
}

type requestLogStore interface {
	requestlog.Sink
	stats.RequestStatsSource
	Ping(ctx context.Context) error
	Close() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse arguments: " + err.Error())
	}
	logger, err := newLogger(config.Production)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	db, err := postgres.Open(config.PostgresDSN, config.DialTimeout)
	if err != nil {
		logger.Fatal("open postgres", zap.Error(err))
	}
	blockStore := postgres.NewRepository(db, metrics.NewPostgresRepository())
	defer func() {
		if err := blockStore.Close(); err != nil {
			logger.Error("close postgres", zap.Error(err))
		}
	}()
	if err := connect(ctx, logger, "postgres", blockStore.Ping); err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}

	logStore, err := openRequestLogStore(ctx, logger, blockStore)
	if err != nil {
		logger.Fatal("open request log store", zap.Error(err))
	}
	defer func() {
		if config.RequestLogBackend != requestLogClickhouse {
			return
		}
		if err := logStore.Close(); err != nil {
			logger.Error("close request log store", zap.Error(err))
		}
	}()

	logWriter, err := requestlog.NewBatchWriter(logStore, metrics.NewRequestLogWriter(), logger.Named("request-log"), requestlog.Config{
		FlushSize:     config.RequestLogFlushSize,
		FlushInterval: config.RequestLogFlushEvery,
	})
	if err != nil {
		logger.Fatal("create request log writer", zap.Error(err))
	}
	logWriter.Start(ctx)
	defer logWriter.Stop()

	hot, err := memo.New(blockStore, config.HotCacheSize, metrics.NewHotCache())
	if err != nil {
		logger.Fatal("create hot cache", zap.Error(err))
	}

	rpcClient, err := solana.Dial(ctx, solana.ClientConfig{
		Endpoint:   config.RPCURL,
		Timeout:    config.RPCTimeout,
		RPS:        config.RPCRPS,
		Commitment: config.RPCCommitment,
	}, metrics.NewRPCClient(config.Cluster))
	if err != nil {
		logger.Fatal("dial solana rpc", zap.Error(err))
	}
	defer rpcClient.Close()

	blockResolver, err := resolver.New(
		hot,
		solana.NewBlockSource(rpcClient),
		logWriter,
		metrics.NewResolver(),
		logger.Named("resolver"),
		resolver.Config{BatchSize: config.BatchSize, ProgramBatchSize: config.ProgramBatchSize},
	)
	if err != nil {
		logger.Fatal("create resolver", zap.Error(err))
	}

	analyzer, err := sampler.NewAnalyzer(blockResolver, metrics.NewSampler(), sampler.Thresholds{
		DisruptionDropPercent:    config.DisruptionDrop,
		MediumDropPercent:        config.MediumDrop,
		HighDropPercent:          config.HighDrop,
		CriticalDropPercent:      config.CriticalDrop,
		RecoveryTolerancePercent: config.RecoveryTolerance,
	}, logger.Named("sampler"))
	if err != nil {
		logger.Fatal("create analyzer", zap.Error(err))
	}

	httpHandler, err := transport.NewHTTPHandler(
		blockResolver,
		analyzer,
		stats.NewReporter(blockStore, logStore),
		logWriter,
		logger.Named("http"),
		transport.Config{
			EventStart:        config.EventStart,
			EventEnd:          config.EventEnd,
			SampleSize:        config.SampleSize,
			ProgramSampleSize: config.ProgramSampleSize,
			MaxSampleSize:     config.MaxSampleSize,
			ProgramID:         config.ProgramID,
		},
	)
	if err != nil {
		logger.Fatal("create http handler", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)

	healthReporter := transport.NewHealthReporter(blockStore, logger.Named("health"), config.HealthTimeout)
	healthpb.RegisterHealthServer(grpcServer, healthReporter.Server())
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)
	go healthReporter.Run(ctx, config.HealthInterval)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	if err := httpHandler.Register(gw); err != nil {
		logger.Fatal("Register http handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// Event comparisons over cold windows fetch hundreds of blocks.
		WriteTimeout:   5 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.RestAddr),
		zap.String("rpc", config.RPCURL),
		zap.String("request_log_backend", config.RequestLogBackend),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func connect(ctx context.Context, logger *zap.Logger, name string, ping func(ctx context.Context) error) error {
	attempt := 0
	return clock.Retry(ctx, config.StartupAttempts, config.StartupDelay, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, config.DialTimeout)
		defer cancel()
		if err := ping(pingCtx); err != nil {
			logger.Warn("store not ready", zap.String("store", name), zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		logger.Info("store connected", zap.String("store", name))
		return nil
	})
}

func openRequestLogStore(ctx context.Context, logger *zap.Logger, fallback *postgres.Repository) (requestLogStore, error) {
	switch config.RequestLogBackend {
	case requestLogPostgres:
		return fallback, nil
	case requestLogClickhouse:
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, err
		}
		if err := connect(ctx, logger, "clickhouse", repo.Ping); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown request log backend %q", config.RequestLogBackend)
	}
}
