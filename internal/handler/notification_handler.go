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

// ListNotifications returns all notifications, newest first.
func ListNotifications(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("notification", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var notifications []model.Notification
	if result := database.GetDB().Order("timestamp desc").Find(&notifications); result.Error != nil {
		log.Error("Failed to list notifications", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, notifications)
}

// CreateNotification creates a notification.
func CreateNotification(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("notification", "create")

	var notification model.Notification
	if err := c.Bind(&notification); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	notification.ID = ""
	if notification.Timestamp == "" {
		notification.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&notification); result.Error != nil {
		log.Error("Failed to create notification", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, notification)
}

// MarkNotificationAsRead flags a single notification as read.
func MarkNotificationAsRead(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("notification", "mark_read")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("update")(time.Now())
	result := database.GetDB().Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		log.Error("Failed to mark notification as read", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Notification not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "isRead": true})
}

// MarkAllNotificationsAsRead flags every unread notification as read in a
// single statement.
func MarkAllNotificationsAsRead(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("notification", "mark_all_read")

	defer prometheus.TrackDBOperation("update")(time.Now())
	result := database.GetDB().Model(&model.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	if result.Error != nil {
		log.Error("Failed to mark all notifications as read", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("Notifications marked as read", zap.Int64("updated", result.RowsAffected))
	return c.JSON(http.StatusOK, echo.Map{"updated": result.RowsAffected})
}

// DeleteNotification removes a notification by id.
func DeleteNotification(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("notification", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Notification{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete notification", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
