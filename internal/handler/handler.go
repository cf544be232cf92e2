// Package handler contains the HTTP handlers: authentication, per-entity
// CRUD, the public forms and the access-id portals.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maemanahmaemanah39-collab/venaules/pkg/jwtutil"
)

const (
	// createTimeout bounds the selected create calls; the context is
	// propagated into the database layer so the statement is actually
	// cancelled, not just abandoned.
	createTimeout = 10 * time.Second

	// signInTimeout bounds the credential check during sign-in.
	signInTimeout = 30 * time.Second
)

var jwtUtil *jwtutil.JWTUtil

// Init wires the handlers to the shared JWT utility.
func Init(j *jwtutil.JWTUtil) {
	jwtUtil = j
}

// isTimeout reports whether a database error was caused by the request
// context hitting its deadline.
func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded
}

// timeoutJSON answers with the localized timeout message for a flow.
func timeoutJSON(c echo.Context, message string) error {
	return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": message})
}

// dbErrorJSON propagates a database error verbatim, as the original facade
// rethrew the remote error unchanged.
func dbErrorJSON(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
