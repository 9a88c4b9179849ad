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

package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/core"
)

type applicationService interface {
	SendApplication(req applicationRequest) error
}

type httpController struct {
	config  Config
	service applicationService
}

func NewHTTPController(config Config, service applicationService) *httpController {
	return &httpController{
		config:  config,
		service: service,
	}
}

// Dispatch forwards a submitted application to the lettings inbox. The
// payload is never persisted, so a failed send is the caller's signal to
// retry.
func (a *httpController) Dispatch(ctx core.Context) error {
	if ctx.Request().Method != http.MethodPost {
		return echo.NewHTTPError(405, "Method Not Allowed")
	}

	// configuration problem, not a request problem
	if a.config.APIKey == "" {
		return echo.NewHTTPError(500, "Missing SENDGRID_API_KEY")
	}

	var req applicationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := a.service.SendApplication(req); err != nil {
		var sendErr *SendError
		if errors.As(err, &sendErr) {
			return echo.NewHTTPError(500, fmt.Sprintf("Email send failed: %s", sendErr.Body)).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not send application email").WithInternal(err)
	}

	return ctx.JSON(200, map[string]bool{"ok": true})
}
