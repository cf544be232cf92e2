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

// ListPackages returns every service package.
func ListPackages(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("package", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var packages []model.Package
	if result := database.GetDB().Find(&packages); result.Error != nil {
		log.Error("Failed to list packages", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, packages)
}

// CreatePackage creates a service package.
func CreatePackage(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("package", "create")

	var pkg model.Package
	if err := c.Bind(&pkg); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	pkg.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&pkg); result.Error != nil {
		log.Error("Failed to create package", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage applies a partial update to a package.
func UpdatePackage(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("package", "update")

	id := c.Param("id")

	var pkg model.Package
	if result := database.GetDB().Where("id = ?", id).First(&pkg); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Package not found"})
	}

	if err := c.Bind(&pkg); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	pkg.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&pkg); result.Error != nil {
		log.Error("Failed to update package", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package by id.
func DeletePackage(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("package", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Package{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete package", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAddOns returns every add-on.
func ListAddOns(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("add_on", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var addOns []model.AddOn
	if result := database.GetDB().Find(&addOns); result.Error != nil {
		log.Error("Failed to list add-ons", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, addOns)
}

// CreateAddOn creates an add-on.
func CreateAddOn(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("add_on", "create")

	var addOn model.AddOn
	if err := c.Bind(&addOn); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	addOn.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&addOn); result.Error != nil {
		log.Error("Failed to create add-on", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, addOn)
}

// UpdateAddOn applies a partial update to an add-on.
func UpdateAddOn(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("add_on", "update")

	id := c.Param("id")

	var addOn model.AddOn
	if result := database.GetDB().Where("id = ?", id).First(&addOn); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Add-on not found"})
	}

	if err := c.Bind(&addOn); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	addOn.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&addOn); result.Error != nil {
		log.Error("Failed to update add-on", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, addOn)
}

// DeleteAddOn removes an add-on by id.
func DeleteAddOn(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("add_on", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.AddOn{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete add-on", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
