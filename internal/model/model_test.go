package model

import (
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func TestIDAssignedOnCreate(t *testing.T) {
	db := testDB(t)

	c := Client{Name: "Budi"}
	require.NoError(t, db.Create(&c).Error)
	assert.NotEmpty(t, c.ID)

	// A caller-supplied id is kept.
	fixed := Client{ID: "11111111-2222-3333-4444-555555555555", Name: "Sari", PortalAccessID: "tok"}
	require.NoError(t, db.Create(&fixed).Error)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", fixed.ID)
}

func TestColumnsAreSnakeCase(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Project{
		ProjectName: "Pernikahan", DpProofURL: "https://example.com/dp.png",
	}).Error)

	// The storage schema speaks snake_case regardless of the JSON shape.
	var name string
	require.NoError(t, db.Raw("SELECT project_name FROM projects").Scan(&name).Error)
	assert.Equal(t, "Pernikahan", name)

	var proof string
	require.NoError(t, db.Raw("SELECT dp_proof_url FROM projects").Scan(&proof).Error)
	assert.Equal(t, "https://example.com/dp.png", proof)
}

func TestJSONKeysAreCamelCase(t *testing.T) {
	p := Project{ProjectName: "Pernikahan", DpProofURL: "x", IsEditingConfirmedByClient: true}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "projectName")
	assert.Contains(t, m, "dpProofUrl")
	assert.Contains(t, m, "isEditingConfirmedByClient")
	assert.NotContains(t, m, "project_name")
}

func TestStringListRoundTrip(t *testing.T) {
	db := testDB(t)

	u := User{
		Email:       "budi@example.com",
		Permissions: StringList{"Dashboard", "Clients"},
	}
	require.NoError(t, db.Create(&u).Error)

	var stored User
	require.NoError(t, db.Where("id = ?", u.ID).First(&stored).Error)
	assert.Equal(t, StringList{"Dashboard", "Clients"}, stored.Permissions)
}

func TestOptionalFieldsOmitted(t *testing.T) {
	tx := Transaction{Description: "Pembelian baterai", Amount: 250000, Type: "Pengeluaran"}

	raw, err := json.Marshal(tx)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	_, hasProject := m["projectId"]
	assert.False(t, hasProject, "nil foreign keys should be omitted from JSON")
}

func TestClientFeedbackTableName(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&ClientFeedback{ClientName: "Budi", Rating: 4}).Error)

	var count int64
	require.NoError(t, db.Table("client_feedback").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
