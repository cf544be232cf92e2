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

// ListContracts returns every contract, optionally filtered by clientId.
func ListContracts(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("contract", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB()
	if clientID := c.QueryParam("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var contracts []model.Contract
	if result := query.Find(&contracts); result.Error != nil {
		log.Error("Failed to list contracts", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, contracts)
}

// CreateContract creates a contract.
func CreateContract(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("contract", "create")

	var contract model.Contract
	if err := c.Bind(&contract); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	contract.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&contract); result.Error != nil {
		log.Error("Failed to create contract", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("Contract created", zap.String("id", contract.ID), zap.String("number", contract.ContractNumber))
	return c.JSON(http.StatusCreated, contract)
}

// UpdateContract applies a partial update to a contract. Used when either
// party signs.
func UpdateContract(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("contract", "update")

	id := c.Param("id")

	var contract model.Contract
	if result := database.GetDB().Where("id = ?", id).First(&contract); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Contract not found"})
	}

	if err := c.Bind(&contract); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	contract.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&contract); result.Error != nil {
		log.Error("Failed to update contract", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, contract)
}

// DeleteContract removes a contract by id.
func DeleteContract(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("contract", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Contract{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete contract", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
