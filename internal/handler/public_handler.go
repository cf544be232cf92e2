package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/internal/view"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// GetPublicPackages returns the package catalog plus the profile header
// data the public pages render.
func GetPublicPackages(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("public_packages", "get")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var packages []model.Package
	if result := database.GetDB().Find(&packages); result.Error != nil {
		log.Error("Failed to load public packages", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	var addOns []model.AddOn
	if result := database.GetDB().Find(&addOns); result.Error != nil {
		log.Error("Failed to load public add-ons", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	response := echo.Map{
		"packages": packages,
		"addOns":   addOns,
	}

	var profiles []model.Profile
	if result := database.GetDB().Limit(1).Find(&profiles); result.Error == nil && len(profiles) > 0 {
		p := profiles[0]
		response["profile"] = echo.Map{
			"companyName":      p.CompanyName,
			"address":          p.Address,
			"phone":            p.Phone,
			"bio":              p.Bio,
			"brandColor":       p.BrandColor,
			"logoBase64":       p.LogoBase64,
			"publicPageConfig": p.PublicPageConfig,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// SubmitPublicLead handles the public lead form. The lead is stored with
// the website contact channel and a notification is queued for the vendor
// without blocking the response.
func SubmitPublicLead(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "public_create")

	var req struct {
		Name     string `json:"name"`
		Whatsapp string `json:"whatsapp"`
		Location string `json:"location"`
		Notes    string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	name := security.SanitizeText(req.Name, 100)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nama tidak boleh kosong."})
	}
	if req.Whatsapp != "" && !security.ValidatePhone(req.Whatsapp) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nomor WhatsApp tidak valid."})
	}

	lead := model.Lead{
		Name:           name,
		ContactChannel: "Website",
		Location:       security.SanitizeText(req.Location, 100),
		Status:         "Sedang Diskusi",
		Date:           time.Now().Format("2006-01-02"),
		Notes:          security.SanitizeText(req.Notes, 2000),
		Whatsapp:       security.SanitizePhone(req.Whatsapp),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&lead); result.Error != nil {
		log.Error("Failed to create public lead", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	notifyNewLead(lead.Name)

	log.Info("Public lead created", zap.String("id", lead.ID))
	return c.JSON(http.StatusCreated, lead)
}

// SubmitPublicSuggestion handles the public suggestion form. Suggestions
// land in the prospect list under their own contact channel.
func SubmitPublicSuggestion(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lead", "public_suggestion")

	var req struct {
		Name       string `json:"name"`
		Whatsapp   string `json:"whatsapp"`
		Suggestion string `json:"suggestion"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	name := security.SanitizeText(req.Name, 100)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nama tidak boleh kosong."})
	}

	lead := model.Lead{
		Name:           name,
		ContactChannel: "Saran",
		Status:         "Sedang Diskusi",
		Date:           time.Now().Format("2006-01-02"),
		Notes:          security.SanitizeText(req.Suggestion, 2000),
		Whatsapp:       security.SanitizePhone(req.Whatsapp),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&lead); result.Error != nil {
		log.Error("Failed to create suggestion", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	return c.JSON(http.StatusCreated, lead)
}

// SubmitPublicBooking handles the public booking form: it creates the
// client and its project in one request, applying a promo code when one
// is supplied. The promo usage counter is incremented as a separate write
// after the booking lands, so a crash in between can under-count usage.
func SubmitPublicBooking(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("booking", "public_create")

	var req struct {
		ClientName  string  `json:"clientName"`
		Email       string  `json:"email"`
		Phone       string  `json:"phone"`
		Instagram   string  `json:"instagram"`
		ProjectName string  `json:"projectName"`
		ProjectType string  `json:"projectType"`
		Date        string  `json:"date"`
		Location    string  `json:"location"`
		PackageID   string  `json:"packageId"`
		TotalCost   float64 `json:"totalCost"`
		PromoCode   string  `json:"promoCode"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	req.ClientName = security.SanitizeText(req.ClientName, 100)
	if req.ClientName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nama tidak boleh kosong."})
	}
	if req.Email != "" && !security.ValidateEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Format email tidak valid."})
	}
	if !security.ValidateCurrency(req.TotalCost) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nilai biaya tidak valid."})
	}

	var pkg model.Package
	if req.PackageID != "" {
		if result := database.GetDB().Where("id = ?", req.PackageID).First(&pkg); result.Error != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Paket tidak ditemukan."})
		}
	}

	var promo *model.PromoCode
	if code := strings.ToUpper(strings.TrimSpace(req.PromoCode)); code != "" {
		found, err := findUsablePromoCode(code)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Kode promo tidak valid atau sudah berakhir."})
		}
		promo = found
	}

	token, err := security.GenerateSecureToken(21)
	if err != nil {
		log.Error("Failed to generate portal access id", zap.Error(err))
		return dbErrorJSON(c, err)
	}

	client := model.Client{
		Name:           req.ClientName,
		Email:          req.Email,
		Phone:          security.SanitizePhone(req.Phone),
		Whatsapp:       security.SanitizePhone(req.Phone),
		Instagram:      security.SanitizeText(req.Instagram, 100),
		Since:          time.Now().Format("2006-01-02"),
		Status:         "Aktif",
		ClientType:     "Langsung",
		LastContact:    time.Now().UTC().Format(time.RFC3339),
		PortalAccessID: token,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&client); result.Error != nil {
		log.Error("Failed to create booking client", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	project := model.Project{
		ProjectName:   req.ProjectName,
		ClientName:    client.Name,
		ClientID:      client.ID,
		ProjectType:   req.ProjectType,
		PackageName:   pkg.Name,
		PackageID:     req.PackageID,
		Date:          req.Date,
		Location:      security.SanitizeText(req.Location, 100),
		Status:        "Dikonfirmasi",
		BookingStatus: "Baru",
		TotalCost:     req.TotalCost,
		PaymentStatus: "Belum Bayar",
	}
	if promo != nil {
		discount := promo.DiscountValue
		if promo.DiscountType == "percentage" {
			discount = req.TotalCost * promo.DiscountValue / 100
		}
		project.PromoCodeID = &promo.ID
		project.DiscountAmount = &discount
		project.TotalCost = req.TotalCost - discount
	}

	if result := database.GetDB().Create(&project); result.Error != nil {
		log.Error("Failed to create booking project", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	// Usage is bumped after the booking is stored, not in the same
	// transaction. The increment runs in SQL so concurrent bookings
	// cannot overwrite each other's count.
	if promo != nil {
		result := database.GetDB().Model(&model.PromoCode{}).
			Where("id = ?", promo.ID).
			Update("usage_count", gorm.Expr("usage_count + ?", 1))
		if result.Error != nil {
			log.Warn("Failed to increment promo usage", zap.String("code", promo.Code), zap.Error(result.Error))
		}
	}

	notifyNewBooking(client.Name)

	log.Info("Public booking created",
		zap.String("clientId", client.ID),
		zap.String("projectId", project.ID))
	return c.JSON(http.StatusCreated, echo.Map{"client": client, "project": project})
}

// ValidatePublicPromoCode checks a promo code for the booking form.
func ValidatePublicPromoCode(c echo.Context) error {
	prometheus.RecordEntityOperation("promo_code", "public_validate")
	defer prometheus.TrackDBOperation("query")(time.Now())

	code := strings.ToUpper(strings.TrimSpace(c.QueryParam("code")))
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Kode promo tidak boleh kosong."})
	}

	promo, err := findUsablePromoCode(code)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"valid": false,
			"error": "Kode promo tidak valid atau sudah berakhir.",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid":         true,
		"code":          promo.Code,
		"discountType":  promo.DiscountType,
		"discountValue": promo.DiscountValue,
	})
}

var errPromoUnusable = errors.New("promo code is not usable")

// findUsablePromoCode loads a code and checks it is active, unexpired and
// under its usage cap.
func findUsablePromoCode(code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	if result := database.GetDB().Where("code = ?", code).First(&promo); result.Error != nil {
		return nil, result.Error
	}
	if !promo.IsActive {
		return nil, errPromoUnusable
	}
	if promo.MaxUsage != nil && promo.UsageCount >= *promo.MaxUsage {
		return nil, errPromoUnusable
	}
	if promo.ExpiryDate != nil && *promo.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", *promo.ExpiryDate)
		if err == nil && time.Now().After(expiry.Add(24*time.Hour)) {
			return nil, errPromoUnusable
		}
	}
	return &promo, nil
}

// notifyNewLead stores the new-prospect alert in the background so form
// submissions never wait on it.
func notifyNewLead(name string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()

		notification := model.Notification{
			Title:     "Prospek Baru Diterima!",
			Message:   "Prospek baru dari " + name + " telah masuk melalui formulir web.",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Icon:      "lead",
			LinkView:  string(view.Prospek),
		}
		if err := database.GetDB().WithContext(ctx).Create(&notification).Error; err != nil {
			logger.GetLogger().Warn("Failed to store lead notification", zap.Error(err))
		}
	}()
}

// notifyNewBooking stores the new-booking alert in the background.
func notifyNewBooking(clientName string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()

		notification := model.Notification{
			Title:     "Booking Baru Diterima!",
			Message:   "Booking baru dari " + clientName + " telah masuk melalui formulir web.",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Icon:      "lead",
			LinkView:  string(view.Booking),
		}
		if err := database.GetDB().WithContext(ctx).Create(&notification).Error; err != nil {
			logger.GetLogger().Warn("Failed to store booking notification", zap.Error(err))
		}
	}()
}
