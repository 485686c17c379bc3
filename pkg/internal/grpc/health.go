package grpc

import (
	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"github.com/rs/zerolog/log"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name health checks ask for, the empty name reports the whole server.
const ServiceName = "circle"

// CheckDatabase publishes SERVING while the database answers pings.
func (v *App) CheckDatabase() {
	status := healthpb.HealthCheckResponse_SERVING
	if err := database.Ping(); err != nil {
		log.Warn().Err(err).Msg("Database did not answer the health check...")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	v.health.SetServingStatus("", status)
	v.health.SetServingStatus(ServiceName, status)
}
