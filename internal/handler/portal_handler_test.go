package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
)

func TestClientPortalBundle(t *testing.T) {
	e := setupTest(t)

	client := model.Client{Name: "Andi & Sari", PortalAccessID: "tokenKlien123"}
	require.NoError(t, database.GetDB().Create(&client).Error)

	require.NoError(t, database.GetDB().Create(&model.Project{
		ProjectName: "Pernikahan Andi & Sari",
		ClientID:    client.ID,
		ClientName:  client.Name,
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.Contract{
		ContractNumber: "VP/2026/001",
		ClientID:       client.ID,
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.ClientFeedback{
		ClientName: client.Name,
		Rating:     5,
	}).Error)

	// Data for another client must not leak into the bundle.
	other := model.Client{Name: "Orang Lain", PortalAccessID: "tokenLain456"}
	require.NoError(t, database.GetDB().Create(&other).Error)
	require.NoError(t, database.GetDB().Create(&model.Project{
		ProjectName: "Proyek Lain",
		ClientID:    other.ID,
	}).Error)

	rec := doRequest(e, "GET", "/portal/tokenKlien123", "", nil)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	got := body["client"].(map[string]interface{})
	assert.Equal(t, "Andi & Sari", got["name"])

	projects := body["projects"].([]interface{})
	require.Len(t, projects, 1)
	assert.Equal(t, "Pernikahan Andi & Sari", projects[0].(map[string]interface{})["projectName"])

	assert.Len(t, body["contracts"].([]interface{}), 1)
	assert.Len(t, body["feedback"].([]interface{}), 1)
}

func TestClientPortalUnknownToken(t *testing.T) {
	e := setupTest(t)

	rec := doRequest(e, "GET", "/portal/tidakAda999", "", nil)
	assert.Equal(t, 404, rec.Code)
}

func TestClientPortalRejectsMalformedToken(t *testing.T) {
	e := setupTest(t)

	rec := doRequest(e, "GET", "/portal/has%20space", "", nil)
	assert.Equal(t, 400, rec.Code)
}

func TestFreelancerPortalBundle(t *testing.T) {
	e := setupTest(t)

	member := model.TeamMember{Name: "Rizky", PortalAccessID: "tokenRizky789"}
	require.NoError(t, database.GetDB().Create(&member).Error)

	require.NoError(t, database.GetDB().Create(&model.TeamProjectPayment{
		TeamMemberID: member.ID,
		Fee:          750000,
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.TeamPaymentRecord{
		TeamMemberID: member.ID,
		RecordNumber: "PAY-001",
	}).Error)
	require.NoError(t, database.GetDB().Create(&model.RewardLedgerEntry{
		TeamMemberID: member.ID,
		Amount:       50000,
	}).Error)

	rec := doRequest(e, "GET", "/freelancer-portal/tokenRizky789", "", nil)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	got := body["teamMember"].(map[string]interface{})
	assert.Equal(t, "Rizky", got["name"])
	assert.Len(t, body["projectPayments"].([]interface{}), 1)
	assert.Len(t, body["paymentRecords"].([]interface{}), 1)
	assert.Len(t, body["rewardLedger"].([]interface{}), 1)
}
