package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListSOPs returns every standard operating procedure.
func ListSOPs(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("sop", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var sops []model.SOP
	if result := database.GetDB().Find(&sops); result.Error != nil {
		log.Error("Failed to list SOPs", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, sops)
}

// CreateSOP creates an SOP. Rich-text content is run through the HTML
// allow-list before storage.
func CreateSOP(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("sop", "create")

	var sop model.SOP
	if err := c.Bind(&sop); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	sop.ID = ""
	sop.Content = security.SanitizeHTML(sop.Content)

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&sop); result.Error != nil {
		log.Error("Failed to create SOP", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, sop)
}

// UpdateSOP applies a partial update to an SOP, re-sanitizing content.
func UpdateSOP(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("sop", "update")

	id := c.Param("id")

	var sop model.SOP
	if result := database.GetDB().Where("id = ?", id).First(&sop); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "SOP not found"})
	}

	if err := c.Bind(&sop); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	sop.ID = id
	sop.Content = security.SanitizeHTML(sop.Content)

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&sop); result.Error != nil {
		log.Error("Failed to update SOP", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, sop)
}

// DeleteSOP removes an SOP by id.
func DeleteSOP(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("sop", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.SOP{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete SOP", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
