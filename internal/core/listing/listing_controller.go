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

package listing

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/utils"
	"gorm.io/gorm"
)

type httpController struct {
	areaRepository     core.AreaRepository
	propertyRepository core.PropertyRepository
	unitRepository     core.UnitRepository
}

func NewHTTPController(areaRepository core.AreaRepository, propertyRepository core.PropertyRepository, unitRepository core.UnitRepository) *httpController {
	return &httpController{
		areaRepository:     areaRepository,
		propertyRepository: propertyRepository,
		unitRepository:     unitRepository,
	}
}

func (a *httpController) ListAreas(ctx core.Context) error {
	areas, err := a.areaRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list areas").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(areas, toAreaDTO))
}

func (a *httpController) ListByArea(ctx core.Context) error {
	areaID, err := core.IntParam(ctx, "areaID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid area id")
	}

	if _, err := a.areaRepository.Read(areaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "area not found")
		}
		return echo.NewHTTPError(500, "could not read area").WithInternal(err)
	}

	properties, err := a.propertyRepository.GetByAreaID(areaID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list properties").WithInternal(err)
	}

	return ctx.JSON(200, SortSummaries(Summarize(properties)))
}

func (a *httpController) Read(ctx core.Context) error {
	propertyID, err := core.IntParam(ctx, "propertyID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid property id")
	}

	property, err := a.propertyRepository.ReadWithRelations(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "property not found")
		}
		return echo.NewHTTPError(500, "could not read property").WithInternal(err)
	}

	availableUnits, err := a.unitRepository.GetAvailableByPropertyID(propertyID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list units").WithInternal(err)
	}

	return ctx.JSON(200, toDetailsDTO(property, availableUnits))
}
