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

// ListSocialMediaPosts returns every planned post, optionally filtered by
// projectId.
func ListSocialMediaPosts(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("social_media_post", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB()
	if projectID := c.QueryParam("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var posts []model.SocialMediaPost
	if result := query.Find(&posts); result.Error != nil {
		log.Error("Failed to list social media posts", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, posts)
}

// CreateSocialMediaPost creates a planned post.
func CreateSocialMediaPost(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("social_media_post", "create")

	var post model.SocialMediaPost
	if err := c.Bind(&post); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	post.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&post); result.Error != nil {
		log.Error("Failed to create social media post", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, post)
}

// UpdateSocialMediaPost applies a partial update to a planned post.
func UpdateSocialMediaPost(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("social_media_post", "update")

	id := c.Param("id")

	var post model.SocialMediaPost
	if result := database.GetDB().Where("id = ?", id).First(&post); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Social media post not found"})
	}

	if err := c.Bind(&post); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	post.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&post); result.Error != nil {
		log.Error("Failed to update social media post", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, post)
}

// DeleteSocialMediaPost removes a planned post by id.
func DeleteSocialMediaPost(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("social_media_post", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.SocialMediaPost{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete social media post", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
