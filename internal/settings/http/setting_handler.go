// Package http provides HTTP handlers for setting storage and retrieval.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
	"github.com/pcoetsee/settings-service/internal/httputil"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	servicesHTTP "github.com/pcoetsee/settings-service/internal/services/http"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
	"github.com/pcoetsee/settings-service/internal/settings/http/dto"
	settingsUseCase "github.com/pcoetsee/settings-service/internal/settings/usecase"
)

// SettingHandler handles HTTP requests for settings.
//
// The read endpoints pass the request's basic credentials straight to the use
// case so authentication and lookup share a transaction. The write endpoints
// run behind the authentication middleware and may act on another owner's
// settings when the actor holds the full role and names the owner explicitly.
type SettingHandler struct {
	settingUseCase settingsUseCase.SettingUseCase
	serviceUseCase servicesUseCase.ServiceUseCase
	logger         *slog.Logger
}

// NewSettingHandler creates a new setting handler with required dependencies.
func NewSettingHandler(
	settingUseCase settingsUseCase.SettingUseCase,
	serviceUseCase servicesUseCase.ServiceUseCase,
	logger *slog.Logger,
) *SettingHandler {
	return &SettingHandler{
		settingUseCase: settingUseCase,
		serviceUseCase: serviceUseCase,
		logger:         logger,
	}
}

// GetHandler retrieves one of the caller's settings by name, stamping its
// date-last-used marker.
// GET /v1/settings/:name - basic credentials verified by the use case.
func (h *SettingHandler) GetHandler(c *gin.Context) {
	name, password, ok := c.Request.BasicAuth()
	if !ok {
		c.Header("WWW-Authenticate", `Basic realm="settings"`)
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	setting, err := h.settingUseCase.Get(c.Request.Context(), name, password, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingToResponse(setting))
}

// ListHandler retrieves a page of the caller's settings. An owner with no
// settings gets an empty page.
// GET /v1/settings - basic credentials verified by the use case.
func (h *SettingHandler) ListHandler(c *gin.Context) {
	name, password, ok := c.Request.BasicAuth()
	if !ok {
		c.Header("WWW-Authenticate", `Basic realm="settings"`)
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	page, err := h.settingUseCase.ListForOwner(c.Request.Context(), name, password, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPageToListResponse(page))
}

// UpsertHandler creates or replaces a setting.
// PUT /v1/settings/:name - requires authentication. A full-role actor may name
// another owner with ?owner=.
func (h *SettingHandler) UpsertHandler(c *gin.Context) {
	ownerID, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	setting, err := h.settingUseCase.Upsert(c.Request.Context(), ownerID, req.ToInput(c.Param("name")))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingToResponse(setting))
}

// DeleteHandler removes a setting.
// DELETE /v1/settings/:name - requires authentication. A full-role actor may
// name another owner with ?owner=. Returns 204 on removal, 404 on a miss.
func (h *SettingHandler) DeleteHandler(c *gin.Context) {
	ownerID, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	removed, err := h.settingUseCase.Delete(c.Request.Context(), ownerID, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !removed {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveOwner determines whose settings a write targets: the actor itself, or
// the service named by ?owner= when the access policy allows it. On failure it
// writes the error response and reports false.
func (h *SettingHandler) resolveOwner(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := servicesHTTP.GetService(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return uuid.UUID{}, false
	}

	principal := servicesDomain.NewPrincipal(actor)

	ownerName := c.Query("owner")
	if ownerName == "" || principal.Is(ownerName) {
		return actor.ID, true
	}

	if err := servicesDomain.CanModifyRecord(principal.Name(), principal.Role(), ownerName); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return uuid.UUID{}, false
	}

	owner, err := h.serviceUseCase.GetByName(c.Request.Context(), ownerName)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return uuid.UUID{}, false
	}

	return owner.ID, true
}
