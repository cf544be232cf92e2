package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/view"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
)

// RequireView gates a route group behind the per-user view permission list.
// Admin always passes; anyone else needs the view in their permission set or
// gets the access-denied response the client renders as a placeholder with a
// single way back to the dashboard.
func RequireView(v view.View) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			claims, ok := ClaimsFromEcho(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			if !view.HasPermission(claims.Role, claims.Permissions, v) {
				log.Warn("Permission denied",
					zap.String("user_id", claims.UserID),
					zap.String("view", string(v)))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":    "Akses Ditolak",
					"message":  "Anda tidak memiliki izin untuk mengakses halaman ini.",
					"redirect": view.Dashboard.Path(),
				})
			}

			return next(c)
		}
	}
}
