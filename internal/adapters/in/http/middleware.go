package http

import (
	"net/http"

	"opspro/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is the echo context key holding the current Session.
const sessionContextKey = "auth_session"

// RequireSession rejects requests without a valid session cookie.
// On success the session is stored in the request context for handlers.
func (s *Server) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "authentication required",
			})
		}

		session, ok := s.sessions.Get(cookie.Value)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "session expired",
			})
		}

		ctx.Set(sessionContextKey, session)
		return next(ctx)
	}
}

// RequireManager rejects sessions that do not carry the MANAGER role.
// Must run after RequireSession.
func (s *Server) RequireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		session := currentSession(ctx)
		if session.Role != kernel.RoleManager {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "manager role required",
			})
		}

		return next(ctx)
	}
}

// currentSession returns the session placed in the context by RequireSession.
func currentSession(ctx echo.Context) Session {
	session, _ := ctx.Get(sessionContextKey).(Session)
	return session
}
