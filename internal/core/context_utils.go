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

package core

import (
	"strconv"
	"strings"

	"github.com/letme-homes/letme/internal/database/models"
)

type AuthSession interface {
	GetUserID() string
	GetEmail() string
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func HasSession(ctx Context) bool {
	session, ok := ctx.Get("session").(AuthSession)
	return ok && session.GetUserID() != ""
}

func GetAdminUser(ctx Context) models.AdminUser {
	return ctx.Get("adminUser").(models.AdminUser)
}

func SetAdminUser(ctx Context, adminUser models.AdminUser) {
	ctx.Set("adminUser", adminUser)
}

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

// IntParam parses a numeric route parameter like :propertyID.
func IntParam(ctx Context, name string) (int, error) {
	return strconv.Atoi(SanitizeParam(ctx.Param(name)))
}
