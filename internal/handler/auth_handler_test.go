package handler

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
)

func TestRegisterCreatesUnapprovedMember(t *testing.T) {
	e := setupTest(t)

	userID := registerUser(t, e, "budi@example.com", "rahasia123")

	var user model.User
	require.NoError(t, database.GetDB().Where("id = ?", userID).First(&user).Error)
	assert.Equal(t, "Member", user.Role)
	assert.False(t, user.IsApproved)
	assert.ElementsMatch(t, []string{"Dashboard", "Clients", "Projects", "Calendar"}, []string(user.Permissions))

	// The auth account mirrors the same id and never stores the plaintext.
	var account model.AuthAccount
	require.NoError(t, database.GetDB().Where("id = ?", userID).First(&account).Error)
	assert.Equal(t, "budi@example.com", account.Email)
	assert.NotEqual(t, "rahasia123", account.PasswordHash)
	assert.NotEmpty(t, account.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	e := setupTest(t)
	registerUser(t, e, "budi@example.com", "rahasia123")

	rec := doRequest(e, "POST", "/api/auth/register", "", map[string]string{
		"fullName": "Budi Lagi",
		"email":    "budi@example.com",
		"password": "lainnya456",
	})
	assert.Equal(t, 409, rec.Code)
}

func TestRegisterConcurrentDuplicateGetsConflict(t *testing.T) {
	e := setupTest(t)

	// Two registers racing on one email: whichever loses — at the
	// existence check or on the unique index — must see the same 409,
	// never a raw database error.
	var wg sync.WaitGroup
	recs := make([]*httptest.ResponseRecorder, 2)
	for i := range recs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			recs[i] = doRequest(e, "POST", "/api/auth/register", "", map[string]string{
				"fullName": "Budi Santoso",
				"email":    "budi@example.com",
				"password": "rahasia123",
			})
		}(i)
	}
	wg.Wait()

	codes := []int{recs[0].Code, recs[1].Code}
	assert.ElementsMatch(t, []int{201, 409}, codes, "got %v", codes)

	var count int64
	require.NoError(t, database.GetDB().Model(&model.AuthAccount{}).
		Where("email = ?", "budi@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidation(t *testing.T) {
	e := setupTest(t)

	rec := doRequest(e, "POST", "/api/auth/register", "", map[string]string{
		"email": "budi@example.com",
	})
	assert.Equal(t, 400, rec.Code)

	rec = doRequest(e, "POST", "/api/auth/register", "", map[string]string{
		"fullName": "Budi",
		"email":    "not-an-email",
		"password": "rahasia123",
	})
	assert.Equal(t, 400, rec.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	e := setupTest(t)

	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email":    "tidak-ada@example.com",
		"password": "apapun",
	})
	assert.Equal(t, 401, rec.Code)
	assert.Equal(t, msgInvalidCredentials, decodeBody(t, rec)["error"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	e := setupTest(t)
	userID := registerUser(t, e, "budi@example.com", "rahasia123")
	approveUser(t, userID, "")

	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email":    "budi@example.com",
		"password": "salah",
	})
	assert.Equal(t, 401, rec.Code)
	assert.Equal(t, msgInvalidCredentials, decodeBody(t, rec)["error"])

	// No session survives a failed credential check.
	var count int64
	database.GetDB().Model(&model.Session{}).Where("revoked_at IS NULL").Count(&count)
	assert.Zero(t, count)
}

func TestLoginUnapprovedBouncesAndRevokesSession(t *testing.T) {
	e := setupTest(t)
	registerUser(t, e, "budi@example.com", "rahasia123")

	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email":    "budi@example.com",
		"password": "rahasia123",
	})
	assert.Equal(t, 403, rec.Code)
	assert.Equal(t, msgAwaitingApproval, decodeBody(t, rec)["error"])

	// The session created during the attempt must be revoked, not left live.
	var sessions []model.Session
	require.NoError(t, database.GetDB().Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.NotNil(t, sessions[0].RevokedAt)
}

func TestLoginMissingMirrorRow(t *testing.T) {
	e := setupTest(t)
	userID := registerUser(t, e, "budi@example.com", "rahasia123")

	// Simulate the mirrored row going missing out from under the account.
	require.NoError(t, database.GetDB().Delete(&model.User{}, "id = ?", userID).Error)

	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email":    "budi@example.com",
		"password": "rahasia123",
	})
	assert.Equal(t, 401, rec.Code)
	assert.Equal(t, msgUserRecordMissing, decodeBody(t, rec)["error"])

	var sessions []model.Session
	require.NoError(t, database.GetDB().Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.NotNil(t, sessions[0].RevokedAt)
}

func TestLoginApprovedIssuesToken(t *testing.T) {
	e := setupTest(t)
	userID := registerUser(t, e, "budi@example.com", "rahasia123")
	approveUser(t, userID, "")

	rec := doRequest(e, "POST", "/api/auth/login", "", map[string]string{
		"email":    "budi@example.com",
		"password": "rahasia123",
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Member", claims.Role)
	assert.NotEmpty(t, claims.SessionID)

	var session model.Session
	require.NoError(t, database.GetDB().Where("id = ?", claims.SessionID).First(&session).Error)
	assert.Nil(t, session.RevokedAt)
}

func TestLogoutRevokesSession(t *testing.T) {
	e := setupTest(t)
	token := loginAs(t, e, "budi@example.com", "")

	rec := doRequest(e, "POST", "/api/auth/logout", token, nil)
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, msgLoggedOut, decodeBody(t, rec)["message"])

	// The token is now dead: the session revocation check rejects it.
	rec = doRequest(e, "GET", "/api/session", token, nil)
	assert.Equal(t, 401, rec.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	e := setupTest(t)

	rec := doRequest(e, "GET", "/api/clients", "", nil)
	assert.Equal(t, 401, rec.Code)

	rec = doRequest(e, "GET", "/api/clients", "not-a-valid-token", nil)
	assert.Equal(t, 401, rec.Code)
}
