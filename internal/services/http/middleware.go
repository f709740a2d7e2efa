package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
	"github.com/pcoetsee/settings-service/internal/httputil"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
)

// BasicAuthMiddleware authenticates requests with HTTP basic credentials.
//
// The middleware:
// 1. Extracts the name/password pair from the Authorization header
// 2. Verifies them via AuthUseCase.Authenticate
// 3. Stores the authenticated service (hash scrubbed) in the request context
// 4. Lets downstream handlers access it via GetService()
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Unknown name or wrong password → 401 Unauthorized (indistinguishable)
//   - Store failures → 503 Service Unavailable
func BasicAuthMiddleware(authUseCase servicesUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, password, ok := c.Request.BasicAuth()
		if !ok {
			logger.Debug("authentication failed: missing or malformed basic auth header")
			c.Header("WWW-Authenticate", `Basic realm="settings"`)
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		service, err := authUseCase.Authenticate(c.Request.Context(), name, password)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("service_name", name),
				slog.String("error", err.Error()))
			// Blank credential fields surface as an authentication failure
			// here, not as a validation problem.
			if apperrors.Is(err, apperrors.ErrInvalidInput) {
				err = apperrors.ErrUnauthorized
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithService(c.Request.Context(), service)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("service_id", service.ID.String()),
			slog.String("service_name", service.Name))

		c.Next()
	}
}
