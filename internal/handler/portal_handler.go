package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// GetClientPortal resolves a client portal access id and returns the
// client's own data bundle: the client row, its projects, contracts and
// the feedback it has left.
func GetClientPortal(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client_portal", "get")
	defer prometheus.TrackDBOperation("query")(time.Now())

	accessID := c.Param("accessId")
	if !security.ValidateID(accessID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid portal access id"})
	}

	var client model.Client
	if result := database.GetDB().Where("portal_access_id = ?", accessID).First(&client); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Portal tidak ditemukan."})
	}

	var (
		projects  []model.Project
		contracts []model.Contract
		feedback  []model.ClientFeedback
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).
			Where("client_id = ?", client.ID).Find(&projects).Error
	})
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).
			Where("client_id = ?", client.ID).Find(&contracts).Error
	})
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).
			Where("client_name = ?", client.Name).Find(&feedback).Error
	})
	if err := g.Wait(); err != nil {
		log.Error("Failed to load client portal bundle", zap.String("clientId", client.ID), zap.Error(err))
		return dbErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"client":    client,
		"projects":  projects,
		"contracts": contracts,
		"feedback":  feedback,
	})
}

// GetFreelancerPortal resolves a freelancer portal access id and returns
// the member row with its payment entries, slips and reward ledger.
func GetFreelancerPortal(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("freelancer_portal", "get")
	defer prometheus.TrackDBOperation("query")(time.Now())

	accessID := c.Param("accessId")
	if !security.ValidateID(accessID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid portal access id"})
	}

	var member model.TeamMember
	if result := database.GetDB().Where("portal_access_id = ?", accessID).First(&member); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Portal tidak ditemukan."})
	}

	var (
		projectPayments []model.TeamProjectPayment
		paymentRecords  []model.TeamPaymentRecord
		rewardEntries   []model.RewardLedgerEntry
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).
			Where("team_member_id = ?", member.ID).Find(&projectPayments).Error
	})
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).
			Where("team_member_id = ?", member.ID).Find(&paymentRecords).Error
	})
	g.Go(func() error {
		return database.GetDB().WithContext(ctx).
			Where("team_member_id = ?", member.ID).Find(&rewardEntries).Error
	})
	if err := g.Wait(); err != nil {
		log.Error("Failed to load freelancer portal bundle", zap.String("memberId", member.ID), zap.Error(err))
		return dbErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"teamMember":      member,
		"projectPayments": projectPayments,
		"paymentRecords":  paymentRecords,
		"rewardLedger":    rewardEntries,
	})
}
