package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/technest/technest/internal/apierror"
	"github.com/technest/technest/internal/server/session"
)

// auth contains all authentication handlers.
type auth struct {
	sessions session.Manager
}

type authenticateParams struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

///// Authenticate
////
//

// Authenticate issues a session cookie for the given identity.
// The identity itself comes from the upstream provider and is accepted as-is.
func (h *auth) Authenticate(c echo.Context) error {
	var params authenticateParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("body", "could not get identity")
	}

	if params.UserID == "" {
		return apierror.Validation("userId", "no user id provided")
	}
	if params.Email == "" {
		return apierror.Validation("email", "no email provided")
	}

	token, err := h.sessions.Issue(session.Identity{
		UserID: params.UserID,
		Email:  params.Email,
	})
	if err != nil {
		return err
	}

	c.SetCookie(h.sessions.Cookie(token))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

///// Logout
////
//

// Logout clears the session cookie. The clearing cookie carries the same
// scope attributes as the issued one, otherwise browsers keep the stale copy.
func (h *auth) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
