package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/maemanahmaemanah39-collab/venaules/internal/middleware"
	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/internal/view"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

const (
	msgInvalidCredentials = "Email atau kata sandi salah."
	msgSlowConnection     = "Koneksi terlalu lambat. Silakan periksa internet Anda dan coba lagi."
	msgAwaitingApproval   = "Akun Anda sedang menunggu persetujuan admin. Silakan hubungi admin untuk aktivasi."
	msgUserRecordMissing  = "User record not found in database. Please contact admin."
	msgLoggedOut          = "Anda telah keluar dari sistem."
)

// Register creates the auth account and then the mirrored application user
// row. New users start as unapproved Members with the starter permission
// set; an admin flips is_approved before they can sign in. The two writes
// are not atomic: if the mirror insert fails the auth account persists and
// the error is surfaced.
func Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		prometheus.RecordAuthError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fullName, email and password are required"})
	}

	if !security.ValidateEmail(req.Email) {
		prometheus.RecordAuthError("invalid_email")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email address"})
	}

	// Check if the account already exists
	defer prometheus.TrackDBOperation("query")(time.Now())
	var existing model.AuthAccount
	if result := database.GetDB().Where("email = ?", req.Email).First(&existing); result.Error == nil {
		log.Warn("Account already exists", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	account := model.AuthAccount{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&account); result.Error != nil {
		// A register racing this one past the existence check lands on
		// the unique email index; answer it like the early check does.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			log.Warn("Account already exists", zap.String("email", req.Email))
			prometheus.RecordAuthError("email_already_exists")
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		log.Error("Failed to create auth account", zap.Error(result.Error))
		prometheus.RecordAuthError("account_creation_failed")
		return dbErrorJSON(c, result.Error)
	}

	permissions := make([]string, 0, len(view.DefaultMemberPermissions))
	for _, v := range view.DefaultMemberPermissions {
		permissions = append(permissions, string(v))
	}

	// Mirrored user row shares the auth account id
	user := model.User{
		ID:          account.ID,
		Email:       req.Email,
		FullName:    req.FullName,
		Role:        "Member",
		Permissions: permissions,
		IsApproved:  false,
	}

	if result := database.GetDB().Create(&user); result.Error != nil {
		log.Error("Failed to create mirrored user record", zap.Error(result.Error))
		prometheus.RecordAuthError("user_creation_failed")
		return dbErrorJSON(c, result.Error)
	}

	log.Info("User registered", zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login authenticates, creates a session, then checks the mirrored user row.
// A missing or unapproved row revokes the freshly created session before the
// error goes out, so a bounced user holds no live session.
func Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), signInTimeout)
	defer cancel()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var account model.AuthAccount
	result := database.GetDB().WithContext(ctx).Where("email = ?", req.Email).First(&account)
	if result.Error != nil {
		if isTimeout(ctx, result.Error) {
			prometheus.RecordAuthError("timeout")
			return timeoutJSON(c, msgSlowConnection)
		}
		log.Warn("Account not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("account_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": msgInvalidCredentials})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": msgInvalidCredentials})
	}

	session := model.Session{UserID: account.ID}
	if result := database.GetDB().Create(&session); result.Error != nil {
		log.Error("Failed to create session", zap.Error(result.Error))
		prometheus.RecordAuthError("session_creation_failed")
		return dbErrorJSON(c, result.Error)
	}
	prometheus.ActiveSessionsGauge.Inc()

	// Fetch the mirrored application user row
	var user model.User
	if result := database.GetDB().Where("id = ?", account.ID).First(&user); result.Error != nil {
		log.Error("Mirrored user record missing", zap.String("user_id", account.ID))
		prometheus.RecordAuthError("user_record_missing")
		revokeSession(session.ID)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": msgUserRecordMissing})
	}

	if !user.IsApproved {
		log.Warn("User not approved", zap.String("email", user.Email))
		prometheus.RecordAuthError("not_approved")
		revokeSession(session.ID)
		return c.JSON(http.StatusForbidden, echo.Map{"error": msgAwaitingApproval})
	}

	token, err := jwtUtil.GenerateToken(user.Email, user.ID, session.ID, user.Role, user.Permissions)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		revokeSession(session.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("User logged in", zap.String("email", user.Email), zap.String("role", user.Role))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Logout revokes the caller's session.
func Logout(c echo.Context) error {
	log := logger.FromEcho(c)

	claims, ok := middleware.ClaimsFromEcho(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	revokeSession(claims.SessionID)
	log.Info("User logged out", zap.String("user_id", claims.UserID))

	return c.JSON(http.StatusOK, echo.Map{"message": msgLoggedOut})
}

func revokeSession(sessionID string) {
	now := time.Now()
	result := database.GetDB().Model(&model.Session{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", now)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to revoke session",
			zap.String("session_id", sessionID), zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		prometheus.ActiveSessionsGauge.Dec()
	}
}
