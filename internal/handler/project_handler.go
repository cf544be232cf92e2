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
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListProjects returns every project, optionally filtered by client.
func ListProjects(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("project", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	db := database.GetDB()
	if clientID := c.QueryParam("clientId"); clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}

	var projects []model.Project
	if result := db.Find(&projects); result.Error != nil {
		log.Error("Failed to list projects", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, projects)
}

// CreateProject creates a project under the create timeout.
func CreateProject(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("project", "create")

	var project model.Project
	if err := c.Bind(&project); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	project.ID = ""

	ctx, cancel := context.WithTimeout(c.Request().Context(), createTimeout)
	defer cancel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().WithContext(ctx).Create(&project); result.Error != nil {
		if isTimeout(ctx, result.Error) {
			return timeoutJSON(c, "Timeout: Gagal menyimpan proyek. Silakan coba lagi.")
		}
		log.Error("Failed to create project", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("Project created",
		zap.String("id", project.ID),
		zap.String("name", project.ProjectName),
		zap.String("client_id", project.ClientID))
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update to a project.
func UpdateProject(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("project", "update")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var project model.Project
	if result := database.GetDB().Where("id = ?", id).First(&project); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}

	if err := c.Bind(&project); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	project.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&project); result.Error != nil {
		log.Error("Failed to update project", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project by id.
func DeleteProject(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("project", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Project{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete project", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
