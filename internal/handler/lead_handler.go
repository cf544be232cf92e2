package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/csvutil"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListLeads returns every prospect.
func ListLeads(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var leads []model.Lead
	if result := database.GetDB().Find(&leads); result.Error != nil {
		log.Error("Failed to list leads", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, leads)
}

// CreateLead creates a prospect under the create timeout.
func CreateLead(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "create")

	var lead model.Lead
	if err := c.Bind(&lead); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	lead.ID = ""

	ctx, cancel := context.WithTimeout(c.Request().Context(), createTimeout)
	defer cancel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().WithContext(ctx).Create(&lead); result.Error != nil {
		if isTimeout(ctx, result.Error) {
			return timeoutJSON(c, "Timeout: Gagal menyimpan prospek. Silakan coba lagi.")
		}
		log.Error("Failed to create lead", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("Lead created", zap.String("id", lead.ID), zap.String("name", lead.Name))
	return c.JSON(http.StatusCreated, lead)
}

// UpdateLead applies a partial update to a prospect.
func UpdateLead(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "update")

	id := c.Param("id")

	var lead model.Lead
	if result := database.GetDB().Where("id = ?", id).First(&lead); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Lead not found"})
	}

	if err := c.Bind(&lead); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	lead.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&lead); result.Error != nil {
		log.Error("Failed to update lead", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, lead)
}

// DeleteLead removes a prospect by id.
func DeleteLead(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Lead{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete lead", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportLeadsCSV streams the prospect list as a timestamped CSV download.
func ExportLeadsCSV(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "export")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var leads []model.Lead
	if result := database.GetDB().Find(&leads); result.Error != nil {
		log.Error("Failed to export leads", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	export := csvutil.Export{
		Headers:          []string{"Nama", "Saluran Kontak", "Lokasi", "Status", "Tanggal", "Catatan"},
		Filename:         "daftar-prospek.csv",
		IncludeTimestamp: true,
		IncludeHeaders:   true,
	}
	for _, l := range leads {
		export.Rows = append(export.Rows, []string{
			l.Name, l.ContactChannel, l.Location, l.Status, l.Date, l.Notes,
		})
	}

	return writeCSV(c, export)
}
