package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListAssets returns every asset.
func ListAssets(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("asset", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var assets []model.Asset
	if result := database.GetDB().Find(&assets); result.Error != nil {
		log.Error("Failed to list assets", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, assets)
}

// CreateAsset creates an asset.
func CreateAsset(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("asset", "create")

	var asset model.Asset
	if err := c.Bind(&asset); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	asset.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&asset); result.Error != nil {
		log.Error("Failed to create asset", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, asset)
}

// UpdateAsset applies a partial update to an asset.
func UpdateAsset(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("asset", "update")

	id := c.Param("id")

	var asset model.Asset
	if result := database.GetDB().Where("id = ?", id).First(&asset); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Asset not found"})
	}

	if err := c.Bind(&asset); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	asset.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&asset); result.Error != nil {
		log.Error("Failed to update asset", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, asset)
}

// DeleteAsset removes an asset by id.
func DeleteAsset(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("asset", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Asset{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete asset", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
