package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListPromoCodes returns every promo code.
func ListPromoCodes(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("promo_code", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var codes []model.PromoCode
	if result := database.GetDB().Find(&codes); result.Error != nil {
		log.Error("Failed to list promo codes", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, codes)
}

// CreatePromoCode creates a promo code. Codes are stored uppercase.
func CreatePromoCode(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("promo_code", "create")

	var code model.PromoCode
	if err := c.Bind(&code); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	code.ID = ""
	code.Code = strings.ToUpper(strings.TrimSpace(code.Code))
	if code.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Kode promo tidak boleh kosong."})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&code); result.Error != nil {
		log.Error("Failed to create promo code", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, code)
}

// UpdatePromoCode applies a partial update to a promo code.
func UpdatePromoCode(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("promo_code", "update")

	id := c.Param("id")

	var code model.PromoCode
	if result := database.GetDB().Where("id = ?", id).First(&code); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Promo code not found"})
	}

	if err := c.Bind(&code); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	code.ID = id
	code.Code = strings.ToUpper(strings.TrimSpace(code.Code))

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&code); result.Error != nil {
		log.Error("Failed to update promo code", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, code)
}

// DeletePromoCode removes a promo code by id.
func DeletePromoCode(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("promo_code", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.PromoCode{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete promo code", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
