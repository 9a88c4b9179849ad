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

package main

import (
	"log/slog"

	"github.com/letme-homes/letme/cmd/letme/api"
	"github.com/letme-homes/letme/internal/core"
	"github.com/pkg/errors"
)

func main() {
	core.LoadConfig() // nolint: errcheck
	core.InitLogger()

	db, err := core.DatabaseFactory()
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		panic(errors.New("failed to setup database connection"))
	}

	api.Start(db)
}
