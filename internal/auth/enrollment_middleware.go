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
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/database"
	"github.com/letme-homes/letme/internal/database/models"
	"gorm.io/gorm"
)

// AdminEnrollmentMiddleware rejects unauthenticated requests and lazily
// enrolls every authenticated identity as an administrator on its first
// request. Enrollment is a get-or-create keyed by the identity id: two
// concurrent first logins race benignly, the second insert is a no-op.
func AdminEnrollmentMiddleware(adminUserRepository core.AdminUserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !core.HasSession(c) {
				return echo.NewHTTPError(401, "authentication required")
			}

			session := core.GetSession(c)

			userID, err := uuid.Parse(session.GetUserID())
			if err != nil {
				return echo.NewHTTPError(401, "invalid identity id").WithInternal(err)
			}

			adminUser, err := adminUserRepository.FindByID(userID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					// transient lookup failures are not first logins
					return echo.NewHTTPError(500, "could not look up admin user").WithInternal(err)
				}

				adminUser = models.AdminUser{
					ID:    userID,
					Email: session.GetEmail(),
				}
				if err := adminUserRepository.Create(nil, &adminUser); err != nil {
					if !database.IsDuplicateKeyError(err) {
						return echo.NewHTTPError(500, "could not enroll admin user").WithInternal(err)
					}
					// another session enrolled the user first - fine
				} else {
					slog.Info("enrolled new admin user", "userID", userID.String())
				}
			}

			core.SetAdminUser(c, adminUser)

			return next(c)
		}
	}
}
