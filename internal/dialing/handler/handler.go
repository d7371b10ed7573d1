package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dialplan_backend/internal/dialing/service"
	"dialplan_backend/internal/dialing/transport"
	"dialplan_backend/platform/httpkit"
	"dialplan_backend/platform/validator"
)

// Handler handles HTTP requests for the dialing module.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidCountry   = "invalid country code"
)

// New creates a new dialing handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// countryParam extracts and validates the :country path parameter.
// Codes are case-insensitive on the wire and uppercased for the registry.
func (h *Handler) countryParam(c *gin.Context) (string, bool) {
	country := strings.ToUpper(c.Param("country"))
	if err := h.val.Var(country, "iso3166_1_alpha2"); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidCountry, nil)
		return "", false
	}
	return country, true
}

// Normalize runs the normalization engine on one raw number.
// POST /api/v1/dial/normalize
func (h *Handler) Normalize(c *gin.Context) {
	var req transport.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Normalize(c.Request.Context(), req))
}

// Preview reformats a partial number for the live input field.
// POST /api/v1/dial/preview
func (h *Handler) Preview(c *gin.Context) {
	var req transport.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Preview(req))
}

// ListConfigs returns all stored per-country rules plus the session default.
// GET /api/v1/dial/configs
func (h *Handler) ListConfigs(c *gin.Context) {
	httpkit.OK(c, h.svc.ListConfigs())
}

// GetConfig returns the rule for one country.
// GET /api/v1/dial/configs/:country
func (h *Handler) GetConfig(c *gin.Context) {
	country, ok := h.countryParam(c)
	if !ok {
		return
	}

	result, err := h.svc.GetConfig(country)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// UpsertConfig stores or replaces the rule for one country.
// PUT /api/v1/dial/configs/:country
func (h *Handler) UpsertConfig(c *gin.Context) {
	country, ok := h.countryParam(c)
	if !ok {
		return
	}

	var req transport.UpsertDialConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.UpsertConfig(c.Request.Context(), country, req))
}

// RemoveConfig deletes the rule for one country. Unknown countries are a
// no-op and still answer 204.
// DELETE /api/v1/dial/configs/:country
func (h *Handler) RemoveConfig(c *gin.Context) {
	country, ok := h.countryParam(c)
	if !ok {
		return
	}

	h.svc.RemoveConfig(c.Request.Context(), country)
	httpkit.NoContent(c)
}

// SetDefaultCountry selects the session's default country.
// PUT /api/v1/dial/default-country
func (h *Handler) SetDefaultCountry(c *gin.Context) {
	var req transport.SetDefaultCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	req.Country = strings.ToUpper(req.Country)
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.SetDefaultCountry(c.Request.Context(), req.Country))
}
