// Copyright (C) 2024 LetMe Accommodation Ltd.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryAPIClient *client.APIClient, oryKratosSessionCookie string) (Session, error) {
	// check if we have a session
	session, _, err := oryAPIClient.FrontendAPI.ToSession(ctx).Cookie(oryKratosSessionCookie).Execute()
	if err != nil {
		return NoSession, err
	}

	identity := session.Identity
	if identity == nil {
		return NoSession, echo.NewHTTPError(401, "session without identity")
	}

	email := ""
	if traits, ok := identity.Traits.(map[string]any); ok {
		if v, ok := traits["email"].(string); ok {
			email = v
		}
	}

	return NewSession(identity.Id, email), nil
}

func SessionMiddleware(oryAPIClient *client.APIClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			oryKratosSessionCookie := getCookie("ory_kratos_session", c.Cookies())

			if oryKratosSessionCookie == nil {
				c.Set("session", NoSession)
				return next(c)
			}

			session, err := cookieAuth(c.Request().Context(), oryAPIClient, oryKratosSessionCookie.String())
			if err != nil {
				// user is not authenticated - downstream middlewares decide
				// whether the route is reachable anyway
				c.Set("session", NoSession)
				return next(c)
			}

			c.Set("session", session)

			return next(c)
		}
	}
}
