package handler

import (
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

// ListTeamMembers returns every freelancer on the roster.
func ListTeamMembers(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_member", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var members []model.TeamMember
	if result := database.GetDB().Find(&members); result.Error != nil {
		log.Error("Failed to list team members", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, members)
}

// CreateTeamMember creates a freelancer and issues a portal access id.
func CreateTeamMember(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_member", "create")

	var member model.TeamMember
	if err := c.Bind(&member); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	member.ID = ""
	if member.PortalAccessID == "" {
		token, err := security.GenerateSecureToken(21)
		if err != nil {
			log.Error("Failed to generate portal access id", zap.Error(err))
			return dbErrorJSON(c, err)
		}
		member.PortalAccessID = token
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&member); result.Error != nil {
		log.Error("Failed to create team member", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember applies a partial update to a freelancer.
func UpdateTeamMember(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_member", "update")

	id := c.Param("id")

	var member model.TeamMember
	if result := database.GetDB().Where("id = ?", id).First(&member); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team member not found"})
	}

	if err := c.Bind(&member); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	member.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&member); result.Error != nil {
		log.Error("Failed to update team member", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, member)
}

// DeleteTeamMember removes a freelancer by id.
func DeleteTeamMember(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_member", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.TeamMember{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete team member", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTeamProjectPayments returns per-project fee entries, optionally
// filtered by teamMemberId.
func ListTeamProjectPayments(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_project_payment", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB()
	if memberID := c.QueryParam("teamMemberId"); memberID != "" {
		query = query.Where("team_member_id = ?", memberID)
	}

	var payments []model.TeamProjectPayment
	if result := query.Find(&payments); result.Error != nil {
		log.Error("Failed to list team project payments", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, payments)
}

// CreateTeamProjectPayment creates a per-project fee entry.
func CreateTeamProjectPayment(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_project_payment", "create")

	var payment model.TeamProjectPayment
	if err := c.Bind(&payment); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	payment.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&payment); result.Error != nil {
		log.Error("Failed to create team project payment", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, payment)
}

// UpdateTeamProjectPayment applies a partial update to a fee entry.
func UpdateTeamProjectPayment(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_project_payment", "update")

	id := c.Param("id")

	var payment model.TeamProjectPayment
	if result := database.GetDB().Where("id = ?", id).First(&payment); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team project payment not found"})
	}

	if err := c.Bind(&payment); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	payment.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&payment); result.Error != nil {
		log.Error("Failed to update team project payment", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, payment)
}

// DeleteTeamProjectPayment removes a fee entry by id.
func DeleteTeamProjectPayment(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_project_payment", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.TeamProjectPayment{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete team project payment", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTeamPaymentRecords returns payment slips, optionally filtered by
// teamMemberId.
func ListTeamPaymentRecords(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_payment_record", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB()
	if memberID := c.QueryParam("teamMemberId"); memberID != "" {
		query = query.Where("team_member_id = ?", memberID)
	}

	var records []model.TeamPaymentRecord
	if result := query.Find(&records); result.Error != nil {
		log.Error("Failed to list team payment records", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, records)
}

// CreateTeamPaymentRecord creates a payment slip.
func CreateTeamPaymentRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_payment_record", "create")

	var record model.TeamPaymentRecord
	if err := c.Bind(&record); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	record.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&record); result.Error != nil {
		log.Error("Failed to create team payment record", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, record)
}

// UpdateTeamPaymentRecord applies a partial update to a payment slip.
func UpdateTeamPaymentRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_payment_record", "update")

	id := c.Param("id")

	var record model.TeamPaymentRecord
	if result := database.GetDB().Where("id = ?", id).First(&record); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team payment record not found"})
	}

	if err := c.Bind(&record); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	record.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&record); result.Error != nil {
		log.Error("Failed to update team payment record", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, record)
}

// DeleteTeamPaymentRecord removes a payment slip by id.
func DeleteTeamPaymentRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("team_payment_record", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.TeamPaymentRecord{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete team payment record", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRewardLedgerEntries returns reward ledger mutations, optionally
// filtered by teamMemberId.
func ListRewardLedgerEntries(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("reward_ledger_entry", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB()
	if memberID := c.QueryParam("teamMemberId"); memberID != "" {
		query = query.Where("team_member_id = ?", memberID)
	}

	var entries []model.RewardLedgerEntry
	if result := query.Find(&entries); result.Error != nil {
		log.Error("Failed to list reward ledger entries", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateRewardLedgerEntry creates a reward ledger mutation.
func CreateRewardLedgerEntry(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("reward_ledger_entry", "create")

	var entry model.RewardLedgerEntry
	if err := c.Bind(&entry); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	entry.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&entry); result.Error != nil {
		log.Error("Failed to create reward ledger entry", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, entry)
}

// DeleteRewardLedgerEntry removes a reward ledger mutation by id.
func DeleteRewardLedgerEntry(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("reward_ledger_entry", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.RewardLedgerEntry{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete reward ledger entry", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
