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

// ListProfiles returns every vendor profile.
func ListProfiles(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("profile", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var profiles []model.Profile
	if result := database.GetDB().Find(&profiles); result.Error != nil {
		log.Error("Failed to list profiles", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetPrimaryProfile returns the first vendor profile, or 404 when none has
// been created yet.
func GetPrimaryProfile(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("profile", "get")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var profiles []model.Profile
	if result := database.GetDB().Limit(1).Find(&profiles); result.Error != nil {
		log.Error("Failed to fetch primary profile", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	if len(profiles) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Profile not found"})
	}
	return c.JSON(http.StatusOK, profiles[0])
}

// CreateProfile creates a vendor profile.
func CreateProfile(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("profile", "create")

	var profile model.Profile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	profile.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&profile); result.Error != nil {
		log.Error("Failed to create profile", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, profile)
}

// UpdateProfile applies a partial update to a vendor profile. Category
// vocabularies and JSON settings replace wholesale when present in the body.
func UpdateProfile(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("profile", "update")

	id := c.Param("id")

	var profile model.Profile
	if result := database.GetDB().Where("id = ?", id).First(&profile); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Profile not found"})
	}

	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	profile.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&profile); result.Error != nil {
		log.Error("Failed to update profile", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, profile)
}
