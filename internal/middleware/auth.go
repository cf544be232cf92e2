package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/jwtutil"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
)

// JWTAuthMiddleware validates the bearer token and rejects revoked sessions.
// The revocation check is what keeps a signed-out (or bounced, unapproved)
// token from being replayed.
func JWTAuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			// Extract the token from the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing authorization header"})
			}

			// Check if the header format is valid
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization header format"})
			}

			tokenString := parts[1]

			// Validate the token
			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
			}

			// Reject tokens whose session has been revoked
			var session model.Session
			result := database.GetDB().Where("id = ? AND revoked_at IS NULL", claims.SessionID).First(&session)
			if result.Error != nil {
				log.Warn("Session revoked or unknown", zap.String("session_id", claims.SessionID))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Session is no longer active"})
			}

			// Store the claims in the context for later use
			c.Set("user", claims)
			c.Set("user_id", claims.UserID)
			log.Debug("JWT token validated successfully",
				zap.String("user_id", claims.UserID),
				zap.String("email", claims.Email))

			return next(c)
		}
	}
}

// ClaimsFromEcho returns the authenticated user's claims, if present.
func ClaimsFromEcho(c echo.Context) (*jwtutil.UserClaims, bool) {
	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	return claims, ok
}
