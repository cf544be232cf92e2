package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/maemanahmaemanah39-collab/venaules/internal/middleware"
	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/internal/view"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// GetSession restores the signed-in context in one round-trip: the user row,
// the primary company profile and the notification list are fetched
// concurrently, mirroring the page-load fan-out of the original client.
func GetSession(c echo.Context) error {
	log := logger.FromEcho(c)

	claims, ok := middleware.ClaimsFromEcho(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var (
		user          model.User
		profile       model.Profile
		profileFound  bool
		notifications []model.Notification
	)

	g, ctx := errgroup.WithContext(c.Request().Context())

	g.Go(func() error {
		return database.GetDB().WithContext(ctx).Where("id = ?", claims.UserID).First(&user).Error
	})
	g.Go(func() error {
		// The primary profile is simply the first row; a missing profile is
		// not an error, the vendor just has not configured one yet.
		result := database.GetDB().WithContext(ctx).Limit(1).Find(&profile)
		profileFound = result.RowsAffected > 0
		return result.Error
	})
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).Order("timestamp desc").Find(&notifications).Error
	})

	if err := g.Wait(); err != nil {
		log.Error("Failed to restore session data", zap.Error(err))
		return dbErrorJSON(c, err)
	}

	resp := echo.Map{
		"user":          user,
		"notifications": notifications,
	}
	if profileFound {
		resp["profile"] = profile
	}

	return c.JSON(http.StatusOK, resp)
}

// ResolveNavigation applies the route redirect rules for the SPA shell.
// Authentication is inferred from an optional bearer token so the endpoint
// serves both signed-in and anonymous navigation.
func ResolveNavigation(c echo.Context) error {
	fragment := c.QueryParam("route")

	authenticated := false
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwtUtil.ValidateToken(parts[1]); err == nil {
				var session model.Session
				result := database.GetDB().
					Where("id = ? AND revoked_at IS NULL", claims.SessionID).
					First(&session)
				authenticated = result.Error == nil
			}
		}
	}

	effective := view.Resolve(fragment, authenticated)
	route := view.Parse(effective)

	resp := echo.Map{
		"route":  effective,
		"view":   route.View,
		"public": view.IsPublic(effective),
	}
	if route.AccessID != "" {
		resp["accessId"] = route.AccessID
	}

	return c.JSON(http.StatusOK, resp)
}
