package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
)

// HealthCheck reports service and database health.
func HealthCheck(c echo.Context) error {
	status := "ok"
	dbStatus := "ok"

	if sqlDB, err := database.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, echo.Map{
		"status":   status,
		"database": dbStatus,
	})
}
