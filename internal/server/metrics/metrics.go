// Package metrics instruments the gRPC server with Prometheus collectors and
// serves them, together with a liveness probe, over HTTP.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics holds the collectors of one server instance. Collectors are
// registered on the Registry passed to New, so tests can use a fresh one.
type Metrics struct {
	gatherer prometheus.Gatherer

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ActiveStreams   prometheus.Gauge
}

func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipeplanner_grpc_requests_total",
				Help: "Total number of handled gRPC requests",
			},
			[]string{"method", "code"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipeplanner_grpc_request_duration_seconds",
				Help:    "Duration of unary gRPC requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		ActiveStreams: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "recipeplanner_grpc_active_streams",
				Help: "Number of open server streams (comment watchers)",
			},
		),
	}
}

// UnaryServerInterceptor counts requests by method and status code and
// observes their latency.
func (m *Metrics) UnaryServerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	m.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	m.RequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	return resp, err
}

// StreamServerInterceptor tracks open streams and counts them on close.
func (m *Metrics) StreamServerInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	m.ActiveStreams.Inc()
	defer m.ActiveStreams.Dec()
	err := handler(srv, ss)
	m.RequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	return err
}
