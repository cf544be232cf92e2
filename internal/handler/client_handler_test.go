package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
)

func TestClientCRUD(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	// Create
	rec := doRequest(e, "POST", "/api/clients", token, map[string]interface{}{
		"name":       "Andi & Sari",
		"email":      "andi@example.com",
		"phone":      "081234567890",
		"status":     "Aktif",
		"clientType": "Langsung",
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())

	created := decodeBody(t, rec)
	id := created["id"].(string)
	assert.NotEmpty(t, id)
	// A portal access id is issued on create.
	assert.NotEmpty(t, created["portalAccessId"])

	// List
	rec = doRequest(e, "GET", "/api/clients", token, nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Andi & Sari")

	// Partial update: only the status changes, the rest is preserved.
	rec = doRequest(e, "PATCH", "/api/clients/"+id, token, map[string]interface{}{
		"status": "Tidak Aktif",
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())

	updated := decodeBody(t, rec)
	assert.Equal(t, "Tidak Aktif", updated["status"])
	assert.Equal(t, "Andi & Sari", updated["name"])
	assert.Equal(t, "andi@example.com", updated["email"])

	var stored model.Client
	require.NoError(t, database.GetDB().Where("id = ?", id).First(&stored).Error)
	assert.Equal(t, "Tidak Aktif", stored.Status)
	assert.Equal(t, "081234567890", stored.Phone)

	// Delete
	rec = doRequest(e, "DELETE", "/api/clients/"+id, token, nil)
	assert.Equal(t, 204, rec.Code)

	var count int64
	database.GetDB().Model(&model.Client{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateClientNotFound(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	rec := doRequest(e, "PATCH", "/api/clients/does-not-exist", token, map[string]interface{}{
		"name": "x",
	})
	assert.Equal(t, 404, rec.Code)
}

func TestExportClientsCSV(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	require.NoError(t, database.GetDB().Create(&model.Client{
		Name:           "Dewi, Ayu",
		Email:          "dewi@example.com",
		Status:         "Aktif",
		PortalAccessID: "portal-dewi",
	}).Error)

	rec := doRequest(e, "GET", "/api/clients/export", token, nil)
	require.Equal(t, 200, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, `attachment; filename="daftar-klien_`)
	assert.Contains(t, disposition, `.csv"`)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"), "CSV should start with a UTF-8 BOM")
	assert.Contains(t, body, "Nama,Email,Telepon")
	// Comma in the name forces RFC 4180 quoting.
	assert.Contains(t, body, `"Dewi, Ayu"`)
	assert.Contains(t, body, "\r\n")
}

func TestMemberPermissionGate(t *testing.T) {
	e := setupTest(t)
	// Members start with Dashboard/Clients/Projects/Calendar only.
	token := loginAs(t, e, "member@example.com", "")

	// Clients is in the starter set.
	rec := doRequest(e, "GET", "/api/clients", token, nil)
	assert.Equal(t, 200, rec.Code)

	// Finance is not: the access-denied body points back to the dashboard.
	rec = doRequest(e, "GET", "/api/transactions", token, nil)
	require.Equal(t, 403, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Akses Ditolak", body["error"])
	assert.Equal(t, "Anda tidak memiliki izin untuk mengakses halaman ini.", body["message"])
	assert.Equal(t, "#/dashboard", body["redirect"])
}

func TestAdminBypassesPermissionGate(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	for _, target := range []string{
		"/api/transactions", "/api/team-members", "/api/promo-codes",
		"/api/sops", "/api/users",
	} {
		rec := doRequest(e, "GET", target, token, nil)
		assert.Equal(t, 200, rec.Code, target)
	}
}
