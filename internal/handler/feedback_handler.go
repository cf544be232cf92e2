package handler

import (
	"context"
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

// ListClientFeedback returns every satisfaction entry.
func ListClientFeedback(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client_feedback", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var feedback []model.ClientFeedback
	if result := database.GetDB().Order("date desc").Find(&feedback); result.Error != nil {
		log.Error("Failed to list client feedback", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, feedback)
}

// CreateClientFeedback creates a satisfaction entry under the create
// timeout. Free-text feedback is sanitized before storage.
func CreateClientFeedback(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client_feedback", "create")

	var feedback model.ClientFeedback
	if err := c.Bind(&feedback); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	feedback.ID = ""
	feedback.ClientName = security.SanitizeText(feedback.ClientName, 100)
	feedback.Feedback = security.SanitizeText(feedback.Feedback, 2000)

	ctx, cancel := context.WithTimeout(c.Request().Context(), createTimeout)
	defer cancel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().WithContext(ctx).Create(&feedback); result.Error != nil {
		if isTimeout(ctx, result.Error) {
			return timeoutJSON(c, "Timeout: Gagal menyimpan feedback. Silakan coba lagi.")
		}
		log.Error("Failed to create client feedback", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	return c.JSON(http.StatusCreated, feedback)
}

// DeleteClientFeedback removes a satisfaction entry by id.
func DeleteClientFeedback(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client_feedback", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.ClientFeedback{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete client feedback", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
