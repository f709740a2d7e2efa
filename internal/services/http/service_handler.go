package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
	"github.com/pcoetsee/settings-service/internal/httputil"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	"github.com/pcoetsee/settings-service/internal/services/http/dto"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
	customValidation "github.com/pcoetsee/settings-service/internal/validation"
)

// ServiceHandler handles HTTP requests for service registration and
// credential management.
type ServiceHandler struct {
	serviceUseCase servicesUseCase.ServiceUseCase
	logger         *slog.Logger
}

// NewServiceHandler creates a new service handler with required dependencies.
func NewServiceHandler(serviceUseCase servicesUseCase.ServiceUseCase, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
		logger:         logger,
	}
}

// RegisterHandler registers a new service.
// POST /v1/services - open endpoint, no authentication required.
// Returns 201 Created with the new record (no password material).
func (h *ServiceHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterServiceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	service, err := h.serviceUseCase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapServiceToResponse(service))
}

// GetHandler retrieves a service record by name.
// GET /v1/services/:name - requires authentication.
func (h *ServiceHandler) GetHandler(c *gin.Context) {
	service, err := h.serviceUseCase.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServiceToResponse(service))
}

// ListHandler retrieves a page of service records.
// GET /v1/services - requires authentication. An empty store is a 404, not an
// empty page.
func (h *ServiceHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	page, err := h.serviceUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPageToListResponse(page))
}

// UpdateHandler updates the named service record on behalf of the
// authenticated service.
// PUT /v1/services/:name - requires authentication; policy gated.
func (h *ServiceHandler) UpdateHandler(c *gin.Context) {
	actor, ok := GetService(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.UpdateServiceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	service, err := h.serviceUseCase.Update(
		c.Request.Context(),
		servicesDomain.NewPrincipal(actor),
		req.ToInput(c.Param("name")),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapServiceToResponse(service))
}
