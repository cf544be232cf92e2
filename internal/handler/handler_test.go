package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/config"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/jwtutil"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// setupTest wires the full route table against a fresh in-memory database.
func setupTest(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// The in-memory sqlite database is per-connection, so the pool must
	// stay at one connection or parallel requests see empty schemas.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.SetDB(db)
	require.NoError(t, database.MigrateModels(model.All()...))

	prometheus.InitMetrics(&config.Config{
		ServiceName: "venaules-test",
		Metrics:     config.MetricsConfig{Prefix: "venaules_test"},
	})

	jwt := jwtutil.NewJWTUtil(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: 1,
	})
	Init(jwt)

	limiter := security.NewRateLimiter(5, time.Minute)
	t.Cleanup(limiter.Close)

	e := echo.New()
	RegisterRoutes(e, jwt, limiter)
	return e
}

// doRequest performs a JSON request against the echo instance.
func doRequest(e *echo.Echo, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns the user id.
func registerUser(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	rec := doRequest(e, "POST", "/api/auth/register", "", map[string]string{
		"fullName": "Test User",
		"email":    email,
		"password": password,
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	return user["id"].(string)
}

// approveUser flips the approval flag, optionally promoting the role.
func approveUser(t *testing.T, userID, role string) {
	t.Helper()
	updates := map[string]interface{}{"is_approved": true}
	if role != "" {
		updates["role"] = role
	}
	require.NoError(t, database.GetDB().Model(&model.User{}).
		Where("id = ?", userID).Updates(updates).Error)
}

// loginAs registers, approves and logs in, returning the bearer token.
func loginAs(t *testing.T, e *echo.Echo, email, role string) string {
	t.Helper()

	userID := registerUser(t, e, email, "rahasia123")
	approveUser(t, userID, role)

	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "rahasia123",
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	return body["token"].(string)
}
