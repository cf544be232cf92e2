package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
)

func TestProjectListFilterByClient(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	require.NoError(t, database.GetDB().Create(&model.Project{
		ProjectName: "Proyek A", ClientID: "client-a",
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.Project{
		ProjectName: "Proyek B", ClientID: "client-b",
	}).Error)

	rec := doRequest(e, "GET", "/api/projects?clientId=client-a", token, nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Proyek A")
	assert.NotContains(t, rec.Body.String(), "Proyek B")

	rec = doRequest(e, "GET", "/api/projects", token, nil)
	assert.Contains(t, rec.Body.String(), "Proyek B")
}

func TestProjectPartialUpdateKeepsFields(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	p := model.Project{
		ProjectName: "Pernikahan Andi",
		Status:      "Persiapan",
		TotalCost:   12000000,
		AmountPaid:  5000000,
	}
	require.NoError(t, database.GetDB().Create(&p).Error)

	rec := doRequest(e, "PATCH", "/api/projects/"+p.ID, token, map[string]interface{}{
		"status":   "Editing",
		"progress": 40,
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var stored model.Project
	require.NoError(t, database.GetDB().Where("id = ?", p.ID).First(&stored).Error)
	assert.Equal(t, "Editing", stored.Status)
	assert.Equal(t, 40, stored.Progress)
	assert.Equal(t, "Pernikahan Andi", stored.ProjectName)
	assert.Equal(t, float64(12000000), stored.TotalCost)
	assert.Equal(t, float64(5000000), stored.AmountPaid)
}

func TestExportTransactionsCSV(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	require.NoError(t, database.GetDB().Create(&model.Transaction{
		Date: "2026-02-01", Description: "DP Pernikahan", Type: "Pemasukan",
		Category: "DP Proyek", Amount: 5000000, Method: "Transfer Bank",
	}).Error)

	rec := doRequest(e, "GET", "/api/transactions/export", token, nil)
	require.Equal(t, 200, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="daftar-transaksi_`)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))
	assert.Contains(t, body, "Tanggal,Deskripsi,Jenis,Kategori,Jumlah,Metode")
	assert.Contains(t, body, "DP Pernikahan")
	assert.Contains(t, body, "5000000")
}

func TestExportLeadsCSV(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	require.NoError(t, database.GetDB().Create(&model.Lead{
		Name: "Calon Klien", ContactChannel: "Instagram",
		Location: "Surabaya", Status: "Sedang Diskusi", Date: "2026-02-10",
	}).Error)

	rec := doRequest(e, "GET", "/api/leads/export", token, nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="daftar-prospek_`)
	assert.Contains(t, rec.Body.String(), "Calon Klien")
}

func TestSOPContentSanitized(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	rec := doRequest(e, "POST", "/api/sops", token, map[string]string{
		"title":    "Persiapan Pemotretan",
		"category": "Fotografi",
		"content":  `<p>Cek baterai</p><script>alert("x")</script><p onclick="x()">Cek memori</p>`,
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var sop model.SOP
	require.NoError(t, database.GetDB().First(&sop).Error)
	assert.Contains(t, sop.Content, "<p>Cek baterai</p>")
	assert.Contains(t, sop.Content, "Cek memori")
	assert.NotContains(t, sop.Content, "script")
	assert.NotContains(t, sop.Content, "onclick")
}

func TestTeamMemberGetsPortalAccessID(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	rec := doRequest(e, "POST", "/api/team-members", token, map[string]interface{}{
		"name":        "Rizky",
		"role":        "Fotografer",
		"standardFee": 750000,
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["portalAccessId"])
}

func TestUserApprovalFlow(t *testing.T) {
	e := setupTest(t)
	adminToken := loginAs(t, e, "admin@example.com", "Admin")

	pendingID := registerUser(t, e, "baru@example.com", "rahasia123")

	// The pending user cannot sign in yet.
	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email": "baru@example.com", "password": "rahasia123",
	})
	require.Equal(t, 403, rec.Code)

	// Admin approves through the user management endpoint.
	rec = doRequest(e, "PATCH", "/api/users/"+pendingID, adminToken, map[string]interface{}{
		"isApproved": true,
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())

	rec = doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email": "baru@example.com", "password": "rahasia123",
	})
	assert.Equal(t, 200, rec.Code, rec.Body.String())
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	e := setupTest(t)
	adminToken := loginAs(t, e, "admin@example.com", "Admin")
	memberToken := loginAs(t, e, "member@example.com", "")

	claims, err := jwtUtil.ValidateToken(memberToken)
	require.NoError(t, err)

	rec := doRequest(e, "DELETE", "/api/users/"+claims.UserID, adminToken, nil)
	require.Equal(t, 204, rec.Code)

	// The deleted user's token is dead and the rows are gone.
	rec = doRequest(e, "GET", "/api/session", memberToken, nil)
	assert.Equal(t, 401, rec.Code)

	var count int64
	database.GetDB().Model(&model.AuthAccount{}).Where("id = ?", claims.UserID).Count(&count)
	assert.Zero(t, count)
}

func TestPromoCodeStoredUppercase(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "admin@example.com", "Admin")

	rec := doRequest(e, "POST", "/api/promo-codes", token, map[string]interface{}{
		"code":          " hemat20 ",
		"discountType":  "percentage",
		"discountValue": 20,
		"isActive":      true,
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())
	assert.Equal(t, "HEMAT20", decodeBody(t, rec)["code"])

	rec = doRequest(e, "POST", "/api/promo-codes", token, map[string]interface{}{
		"code": "   ",
	})
	assert.Equal(t, 400, rec.Code)
}
