package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	metrics        http.Handler

	logger *logger.Logger
}

// NewHandler returns a Handler serving services. A zero requestTimeout
// disables the per-request deadline; a nil metrics handler leaves /metrics
// unrouted.
func NewHandler(services *service.Services, requestTimeout time.Duration, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		metrics:        metrics,
		logger:         logger,
	}
}
