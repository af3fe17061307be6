package http

import (
	"net/http"
	"strings"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// authMiddleware authenticates the request with a Bearer access token and
// stores the resulting actor in the request context.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := s.issuer.Validate(token, auth.AccessToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		accountID, err := kernel.UUIDFromString(claims.AccountID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		actor, err := kernel.NewActor(accountID, claims.DisplayName, claims.Staff)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(actorContextKey, actor)
		return next(c)
	}
}

// optionalAuthMiddleware resolves the actor when a Bearer token is present
// but lets anonymous requests through. A token that is present yet invalid
// is still rejected so a stale staff session never silently downgrades.
func (s *Server) optionalAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	authed := s.authMiddleware(next)
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}
		return authed(c)
	}
}

func actorFromContext(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return actor, nil
}

// actorOrGuest returns the authenticated actor, or a throwaway non-staff
// actor for anonymous requests on public routes.
func actorOrGuest(c echo.Context) kernel.Actor {
	if actor, ok := c.Get(actorContextKey).(kernel.Actor); ok {
		return actor
	}
	guest, _ := kernel.NewActor(kernel.NewUUID(), "guest", false)
	return guest
}
