// Package health exposes the admin's readiness over the standard gRPC
// health protocol. Readiness follows a probe of the catalog API.
package health

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported next to the overall ("") status.
const ServiceName = "catalog.admin"

type Probe func(ctx context.Context) error

type Server struct {
	hs       *health.Server
	probe    Probe
	interval time.Duration
	log      *logrus.Logger
}

func New(probe Probe, interval time.Duration, log *logrus.Logger) *Server {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	s := &Server{hs: health.NewServer(), probe: probe, interval: interval, log: log}
	s.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

func (s *Server) Register(g *grpc.Server) {
	healthpb.RegisterHealthServer(g, s.hs)
}

// Run probes until ctx is done, then reports NOT_SERVING for good.
func (s *Server) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			s.hs.Shutdown()
			return
		case <-t.C:
			s.Check(ctx)
		}
	}
}

// Check runs the probe once and publishes the result.
func (s *Server) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.probe(ctx); err != nil {
		s.log.WithError(err).Warn("catalog api probe failed")
		s.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.set(healthpb.HealthCheckResponse_SERVING)
}

func (s *Server) set(st healthpb.HealthCheckResponse_ServingStatus) {
	s.hs.SetServingStatus("", st)
	s.hs.SetServingStatus(ServiceName, st)
}

// Status answers the same way a remote Check call would.
func (s *Server) Status(ctx context.Context) (healthpb.HealthCheckResponse_ServingStatus, error) {
	res, err := s.hs.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return res.GetStatus(), nil
}
