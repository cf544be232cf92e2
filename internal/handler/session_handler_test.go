package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
)

func TestGetSessionReturnsBundle(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	require.NoError(t, database.GetDB().Create(&model.Profile{
		CompanyName: "Vena Pictures",
		FullName:    "Admin Vena",
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.Notification{
		Title:     "Prospek Baru Diterima!",
		Timestamp: "2026-01-02T10:00:00Z",
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.Notification{
		Title:     "Pembayaran Diterima",
		Timestamp: "2026-01-03T10:00:00Z",
	}).Error)

	rec := doRequest(e, "GET", "/api/session", token, nil)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin@example.com", user["email"])

	profile := body["profile"].(map[string]interface{})
	assert.Equal(t, "Vena Pictures", profile["companyName"])

	// Newest notification first.
	notifications := body["notifications"].([]interface{})
	require.Len(t, notifications, 2)
	first := notifications[0].(map[string]interface{})
	assert.Equal(t, "Pembayaran Diterima", first["title"])
}

func TestGetSessionWithoutProfile(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	rec := doRequest(e, "GET", "/api/session", token, nil)
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	_, hasProfile := body["profile"]
	assert.False(t, hasProfile, "missing profile should be omitted, not an error")
}

func TestResolveNavigationAnonymous(t *testing.T) {
	e := setupTest(t)

	// Private route without a token bounces home.
	rec := doRequest(e, "GET", "/api/navigation/resolve?route=%23/finance", "", nil)
	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "#/home", body["route"])
	assert.Equal(t, true, body["public"])

	// Public routes pass through.
	rec = doRequest(e, "GET", "/api/navigation/resolve?route=%23/login", "", nil)
	body = decodeBody(t, rec)
	assert.Equal(t, "#/login", body["route"])
}

func TestResolveNavigationAuthenticated(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	// Authenticated user on a public-only route lands on the dashboard.
	rec := doRequest(e, "GET", "/api/navigation/resolve?route=%23/login", token, nil)
	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "#/dashboard", body["route"])
	assert.Equal(t, "Dashboard", body["view"])

	// Private routes pass through with the resolved view.
	rec = doRequest(e, "GET", "/api/navigation/resolve?route=%23/promo-codes", token, nil)
	body = decodeBody(t, rec)
	assert.Equal(t, "#/promo-codes", body["route"])
	assert.Equal(t, "Promo Codes", body["view"])
	assert.Equal(t, false, body["public"])
}

func TestResolveNavigationRevokedTokenIsAnonymous(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	rec := doRequest(e, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, 200, rec.Code)

	// A revoked session no longer counts as authenticated.
	rec = doRequest(e, "GET", "/api/navigation/resolve?route=%23/finance", token, nil)
	body := decodeBody(t, rec)
	assert.Equal(t, "#/home", body["route"])
}

func TestResolveNavigationPortalAccessID(t *testing.T) {
	e := setupTest(t)

	rec := doRequest(e, "GET", "/api/navigation/resolve?route=%23/portal/tok123", "", nil)
	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "#/portal/tok123", body["route"])
	assert.Equal(t, "tok123", body["accessId"])
}
