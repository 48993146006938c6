package http

import (
	"net/http"

	"github.com/MKhiriev/go-settings-registry/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, version, http.StatusOK)
}
