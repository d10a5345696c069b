package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/clock"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthReporter reports SERVING over the gRPC health protocol while the store answers pings.
type HealthReporter struct {
	server  *health.Server
	pinger  Pinger
	logger  *zap.Logger
	timeout time.Duration
	sleep   func(context.Context, time.Duration) error
}

// NewHealthReporter returns a HealthReporter that starts as NOT_SERVING.
func NewHealthReporter(pinger Pinger, logger *zap.Logger, timeout time.Duration) *HealthReporter {
	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthReporter{
		server:  server,
		pinger:  pinger,
		logger:  logger,
		timeout: timeout,
		sleep:   clock.SleepWithContext,
	}
}

// Server returns the health service to register on a gRPC server.
func (h *HealthReporter) Server() healthpb.HealthServer {
	return h.server
}

// Check pings the store once and publishes the resulting status.
func (h *HealthReporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("store ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	return status
}

// Run checks health every interval until ctx is done, then marks the service as shutting down.
func (h *HealthReporter) Run(ctx context.Context, interval time.Duration) {
	defer h.server.Shutdown()
	for {
		h.Check(ctx)
		if err := h.sleep(ctx, interval); err != nil {
			return
		}
	}
}
