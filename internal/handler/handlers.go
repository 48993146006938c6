package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/handler/http"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. metrics may be
// nil.
func NewHandlers(services *service.Services, cfg config.Server, metrics nethttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, metrics, logger),
	}, nil
}
