// Package view models the back-office navigation surface: the set of
// screens, the URL-fragment route table, the public/private split and the
// per-user permission check that gates rendering.
package view

import "strings"

// View identifies a single back-office screen.
type View string

const (
	Homepage           View = "Homepage"
	Dashboard          View = "Dashboard"
	Prospek            View = "Prospek"
	Booking            View = "Booking"
	Clients            View = "Clients"
	Projects           View = "Projects"
	Team               View = "Team"
	Finance            View = "Finance"
	Calendar           View = "Calendar"
	SocialMediaPlanner View = "Social Media Planner"
	Packages           View = "Packages"
	Assets             View = "Assets"
	Contracts          View = "Contracts"
	PromoCodes         View = "Promo Codes"
	SOP                View = "SOP"
	ClientReports      View = "Client Reports"
	Settings           View = "Settings"
)

// DefaultMemberPermissions is the starter permission set granted on sign-up.
var DefaultMemberPermissions = []View{Dashboard, Clients, Projects, Calendar}

// viewPaths maps each view to its fragment path segment.
var viewPaths = map[View]string{
	Homepage:           "home",
	Dashboard:          "dashboard",
	Prospek:            "prospek",
	Booking:            "booking",
	Clients:            "clients",
	Projects:           "projects",
	Team:               "team",
	Finance:            "finance",
	Calendar:           "calendar",
	SocialMediaPlanner: "social-media-planner",
	Packages:           "packages",
	Assets:             "assets",
	Contracts:          "contracts",
	PromoCodes:         "promo-codes",
	SOP:                "sop",
	ClientReports:      "client-reports",
	Settings:           "settings",
}

var pathViews = func() map[string]View {
	m := make(map[string]View, len(viewPaths))
	for v, p := range viewPaths {
		m[p] = v
	}
	return m
}()

// publicPrefixes are the fragment prefixes reachable without authentication.
var publicPrefixes = []string{
	"#/public",
	"#/feedback",
	"#/suggestion",
	"#/revision",
	"#/portal",
	"#/freelancer-portal",
	"#/login",
	"#/signup",
}

// Path returns the fragment path for a view, e.g. "#/promo-codes".
func (v View) Path() string {
	if p, ok := viewPaths[v]; ok {
		return "#/" + p
	}
	return "#/" + strings.ReplaceAll(strings.ToLower(string(v)), " ", "-")
}

// Route is a parsed URL fragment.
type Route struct {
	Fragment string
	View     View
	// AccessID is set for the client and freelancer portal routes.
	AccessID string
}

// normalize strips the query part and defaults an empty fragment to home.
func normalize(fragment string) string {
	if fragment == "" || fragment == "#" || fragment == "#/" {
		return "#/home"
	}
	if i := strings.Index(fragment, "?"); i >= 0 {
		fragment = fragment[:i]
	}
	return fragment
}

// Parse resolves a URL fragment to a route. Unknown paths fall back to the
// homepage, matching the original screen resolution.
func Parse(fragment string) Route {
	fragment = normalize(fragment)

	trimmed := strings.TrimPrefix(fragment, "#/")
	parts := strings.Split(trimmed, "/")
	path := strings.ToLower(parts[0])

	r := Route{Fragment: fragment, View: Homepage}

	switch path {
	case "portal", "freelancer-portal":
		if len(parts) > 1 {
			r.AccessID = parts[1]
		}
		return r
	}

	if v, ok := pathViews[path]; ok {
		r.View = v
	}
	return r
}

// IsPublic reports whether the fragment is reachable without authentication.
func IsPublic(fragment string) bool {
	fragment = normalize(fragment)
	if fragment == "#/home" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(fragment, prefix) {
			return true
		}
	}
	return false
}

// Resolve applies the redirect rules to a fragment: an authenticated user on
// any public-only route lands on the dashboard, an unauthenticated user on a
// private route lands on home. Anything else passes through unchanged.
func Resolve(fragment string, authenticated bool) string {
	fragment = normalize(fragment)

	if authenticated {
		if IsPublic(fragment) {
			return "#/dashboard"
		}
		return fragment
	}

	if !IsPublic(fragment) {
		return "#/home"
	}
	return fragment
}

// HasPermission reports whether a user may see the view. Admin bypasses the
// allow-list; everyone else needs the view in their permission set.
func HasPermission(role string, permissions []string, v View) bool {
	if role == "Admin" {
		return true
	}
	for _, p := range permissions {
		if p == string(v) {
			return true
		}
	}
	return false
}
