package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
	"github.com/MKhiriev/go-settings-registry/internal/utils"
)

// ReloadResponse is the body of POST /api/settings/reload.
type ReloadResponse struct {
	Status  settings.StatusCode       `json:"status"`
	Error   string                    `json:"error,omitempty"`
	Invalid []settings.InvalidSetting `json:"invalid,omitempty"`
}

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	values := h.services.SettingsService.GetAll(r.Context())

	if _, err := utils.WriteJSON(w, values, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing settings snapshot")
	}
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key, err := settingKey(r)
	if err != nil {
		log.Debug().Err(err).Msg("malformed settings key")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, err := h.services.SettingsService.GetValue(r.Context(), key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("settings lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteText(w, value, http.StatusOK); err != nil {
		log.Err(err).Str("key", key).Msg("error writing settings value")
	}
}

// settingKey returns the decoded {key} segment. chi matches against
// URL.RawPath when the request carries one, so the segment is still escaped
// in that case.
func settingKey(r *http.Request) (string, error) {
	key := chi.URLParam(r, "key")
	if r.URL.RawPath == "" {
		return key, nil
	}

	unescaped, err := url.PathUnescape(key)
	if err != nil {
		return "", fmt.Errorf("malformed settings key %q: %w", key, err)
	}

	return unescaped, nil
}

func (h *Handler) reloadSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	code, err := h.services.SettingsService.Reload(r.Context())
	response := ReloadResponse{Status: code}
	status := http.StatusOK

	if err != nil {
		response.Error = err.Error()
		var verr *settings.ValidationError
		if errors.As(err, &verr) {
			response.Invalid = verr.Settings
		}
		status = statusFromError(err)
		log.Warn().Err(err).Uint32("code", uint32(code)).Msg("settings reload failed")
	}

	if _, err = utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Msg("error writing reload response")
	}
}
