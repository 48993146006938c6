package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

type httpSettingsAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPSettingsAdapter returns a [SettingsAdapter] for the daemon at
// cfg.ServerURL. A URL without a scheme is treated as http.
func NewHTTPSettingsAdapter(cfg config.ClientConfig, logger *logger.Logger) (SettingsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid settingsd address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpSettingsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSettingsAdapter) GetValue(ctx context.Context, key string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Get("/api/settings/{key}")
	if err != nil {
		return "", fmt.Errorf("get setting request: %w", err)
	}
	if err = mapHTTPError(resp, settings.ErrInvalidConfiguration); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpSettingsAdapter) GetAll(ctx context.Context) (map[string]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/settings/")
	if err != nil {
		return nil, fmt.Errorf("list settings request: %w", err)
	}
	if err = mapHTTPError(resp, ErrNotFound); err != nil {
		return nil, err
	}

	var values map[string]string
	if err = json.Unmarshal(resp.Body(), &values); err != nil {
		return nil, fmt.Errorf("decode settings snapshot: %w", err)
	}

	return values, nil
}

// Reload returns the decoded daemon answer together with an error matching
// the registry sentinel that caused a failure: ErrConfigurationFileNotFound
// on 404, a *settings.ValidationError when the daemon listed rejected
// settings, and ErrConfigurationParseFailure for any other 422.
func (h *httpSettingsAdapter) Reload(ctx context.Context) (ReloadResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Post("/api/settings/reload")
	if err != nil {
		return ReloadResult{}, fmt.Errorf("reload request: %w", err)
	}

	var result ReloadResult
	if decodeErr := json.Unmarshal(resp.Body(), &result); decodeErr != nil {
		h.logger.Debug().Err(decodeErr).Int("status", resp.StatusCode()).Msg("reload response is not JSON")
		result = ReloadResult{Status: settings.StatusUnknownError}
	}

	if resp.StatusCode() == http.StatusUnprocessableEntity && len(result.Invalid) > 0 {
		return result, &settings.ValidationError{Settings: result.Invalid}
	}
	if err = mapHTTPError(resp, settings.ErrConfigurationFileNotFound); err != nil {
		return result, err
	}

	return result, nil
}
