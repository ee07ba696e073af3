package facades

import (
	"context"
	"time"

	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CVServiceName is the service name reported through the gRPC health protocol.
const CVServiceName = "yetkinlik.CVService"

// StatusChecker reports backend connectivity.
type StatusChecker interface {
	Check(ctx context.Context) models.Status
}

// HealthGRPCFacade exposes backend connectivity through the standard gRPC health service.
type HealthGRPCFacade struct {
	server *health.Server
}

// NewHealthGRPCFacade creates a facade that reports NOT_SERVING until the first update.
func NewHealthGRPCFacade() *HealthGRPCFacade {
	f := &HealthGRPCFacade{server: health.NewServer()}
	f.Update(models.Status{})
	return f
}

// Register adds the health service to a gRPC server.
func (f *HealthGRPCFacade) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, f.server)
}

// Update sets the serving status from a connection check.
func (f *HealthGRPCFacade) Update(status models.Status) {
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if status.Connected() {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}

	f.server.SetServingStatus("", servingStatus)
	f.server.SetServingStatus(CVServiceName, servingStatus)
}

// Watch polls the checker every interval until ctx is done, then marks the service as shutting down.
func (f *HealthGRPCFacade) Watch(ctx context.Context, checker StatusChecker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := checker.Check(ctx)
	f.Update(last)

	for {
		select {
		case <-ctx.Done():
			f.server.Shutdown()
			return
		case <-ticker.C:
			status := checker.Check(ctx)
			if status != last {
				logger.Log.Infow("connection status changed",
					"database", status.Database,
					"cache", status.Cache,
				)
			}
			last = status
			f.Update(status)
		}
	}
}
