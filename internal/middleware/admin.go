package middleware

import (
	"strings"

	"github.com/aevohorology/storefront-service/internal/store"
	"github.com/aevohorology/storefront-service/pkg/errs"
	"github.com/aevohorology/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
)

// AdminOnly gates the back-office routes on the store's current session:
// the bearer token must match the signed-in session and the profile must
// carry the administrator flag.
func AdminOnly(s *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			auth := s.Auth()
			if auth.Session.AccessToken == "" || token != auth.Session.AccessToken {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			if !auth.IsAdmin {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
			}

			return next(c)
		}
	}
}
