package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "#/dashboard", Dashboard.Path())
	assert.Equal(t, "#/promo-codes", PromoCodes.Path())
	assert.Equal(t, "#/social-media-planner", SocialMediaPlanner.Path())
}

func TestParse(t *testing.T) {
	assert.Equal(t, Homepage, Parse("").View)
	assert.Equal(t, Homepage, Parse("#/").View)
	assert.Equal(t, Dashboard, Parse("#/dashboard").View)
	assert.Equal(t, Clients, Parse("#/clients?filter=aktif").View)
	assert.Equal(t, SocialMediaPlanner, Parse("#/social-media-planner").View)

	// Unknown paths fall back to the homepage.
	assert.Equal(t, Homepage, Parse("#/does-not-exist").View)
}

func TestParsePortalAccessID(t *testing.T) {
	r := Parse("#/portal/abc123token")
	assert.Equal(t, "abc123token", r.AccessID)

	r = Parse("#/freelancer-portal/xyz789")
	assert.Equal(t, "xyz789", r.AccessID)

	r = Parse("#/portal")
	assert.Equal(t, "", r.AccessID)
}

func TestIsPublic(t *testing.T) {
	assert.True(t, IsPublic(""))
	assert.True(t, IsPublic("#/home"))
	assert.True(t, IsPublic("#/login"))
	assert.True(t, IsPublic("#/public-booking"))
	assert.True(t, IsPublic("#/portal/abc"))
	assert.True(t, IsPublic("#/freelancer-portal/xyz"))

	assert.False(t, IsPublic("#/dashboard"))
	assert.False(t, IsPublic("#/finance"))
}

func TestResolveRedirects(t *testing.T) {
	// Authenticated user on a public-only route bounces to the dashboard.
	assert.Equal(t, "#/dashboard", Resolve("#/login", true))
	assert.Equal(t, "#/dashboard", Resolve("", true))
	assert.Equal(t, "#/clients", Resolve("#/clients", true))

	// Unauthenticated user on a private route bounces home.
	assert.Equal(t, "#/home", Resolve("#/finance", false))
	assert.Equal(t, "#/login", Resolve("#/login", false))
	assert.Equal(t, "#/portal/abc", Resolve("#/portal/abc", false))
}

func TestHasPermission(t *testing.T) {
	perms := []string{"Dashboard", "Clients"}

	assert.True(t, HasPermission("Member", perms, Dashboard))
	assert.True(t, HasPermission("Member", perms, Clients))
	assert.False(t, HasPermission("Member", perms, Finance))
	assert.False(t, HasPermission("Member", nil, Dashboard))

	// Admin bypasses the allow-list entirely.
	assert.True(t, HasPermission("Admin", nil, Finance))
	assert.True(t, HasPermission("Admin", nil, Settings))
}

func TestDefaultMemberPermissions(t *testing.T) {
	assert.Equal(t, []View{Dashboard, Clients, Projects, Calendar}, DefaultMemberPermissions)
}
