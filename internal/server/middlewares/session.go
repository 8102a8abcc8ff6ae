package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/technest/technest/internal/apierror"
	"github.com/technest/technest/internal/server/session"
)

// CurrentViewerContextKey is the key to retrieve the current viewer from echo.Context.
const CurrentViewerContextKey = "current_viewer"

// OptionalSession resolves the viewer from the session cookie and stores it
// into echo.Context. A missing, malformed or expired token degrades to an
// anonymous viewer; the request always proceeds.
func OptionalSession(m session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CurrentViewerContextKey, resolve(m, c))
			return next(c)
		}
	}
}

// RequireSession short-circuits with 401 when no valid session is presented.
// No downstream handler runs on failure.
func RequireSession(m session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			viewer := resolve(m, c)
			if !viewer.Authenticated {
				return apierror.Unauthorized()
			}

			c.Set(CurrentViewerContextKey, viewer)
			return next(c)
		}
	}
}

func resolve(m session.Manager, c echo.Context) session.Viewer {
	cookie, err := c.Cookie(m.CookieName())
	if err != nil || cookie.Value == "" {
		return session.Anonymous()
	}

	identity, err := m.Verify(cookie.Value)
	if err != nil {
		return session.Anonymous()
	}
	return session.Authenticated(identity)
}
