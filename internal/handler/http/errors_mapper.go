package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-settings-registry/internal/service"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

var errorStatusMap = map[error]int{
	settings.ErrInvalidConfiguration:      http.StatusNotFound,
	settings.ErrConfigurationFileNotFound: http.StatusNotFound,
	settings.ErrConfigurationParseFailure: http.StatusUnprocessableEntity,
	settings.ErrInvalidConfigurationValue: http.StatusUnprocessableEntity,

	service.ErrEmptyKey:            http.StatusBadRequest,
	service.ErrReloadNotConfigured: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
