package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListUsers returns every application user row.
func ListUsers(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("user", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var users []model.User
	if result := database.GetDB().Find(&users); result.Error != nil {
		log.Error("Failed to list users", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser applies a partial update to a user row. Admins use this to
// approve accounts, change roles and grant view permissions.
func UpdateUser(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("user", "update")

	id := c.Param("id")

	var user model.User
	if result := database.GetDB().Where("id = ?", id).First(&user); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}

	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	user.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&user); result.Error != nil {
		log.Error("Failed to update user", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("User updated", zap.String("id", id), zap.String("role", user.Role), zap.Bool("approved", user.IsApproved))
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user row and its auth account, and revokes any
// sessions still open for it.
func DeleteUser(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("user", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if result := tx.Model(&model.Session{}).
			Where("user_id = ? AND revoked_at IS NULL", id).
			Update("revoked_at", now); result.Error != nil {
			return result.Error
		}
		if result := tx.Delete(&model.User{}, "id = ?", id); result.Error != nil {
			return result.Error
		}
		return tx.Delete(&model.AuthAccount{}, "id = ?", id).Error
	})
	if err != nil {
		log.Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		return dbErrorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
