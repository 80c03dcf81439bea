package grpc

import (
	"git.solsynth.dev/hypernet/blog/pkg/internal/database"
	"github.com/rs/zerolog/log"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RefreshHealth publishes whether the content store is reachable.
func (v *App) RefreshHealth() {
	status := healthpb.HealthCheckResponse_SERVING

	if raw, err := database.C.DB(); err != nil {
		log.Warn().Err(err).Msg("An error occurred when reaching database for health check...")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else if err := raw.Ping(); err != nil {
		log.Warn().Err(err).Msg("Database did not answer the health check ping...")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	v.health.SetServingStatus("", status)
}
