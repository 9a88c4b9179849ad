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

package unit

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/storage"
	"gorm.io/gorm"
)

type httpController struct {
	unitRepository     core.UnitRepository
	propertyRepository core.PropertyRepository
	storageClient      storage.Client
}

func NewHTTPController(unitRepository core.UnitRepository, propertyRepository core.PropertyRepository, storageClient storage.Client) *httpController {
	return &httpController{
		unitRepository:     unitRepository,
		propertyRepository: propertyRepository,
		storageClient:      storageClient,
	}
}

func (a *httpController) List(ctx core.Context) error {
	units, err := a.unitRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list units").WithInternal(err)
	}

	return ctx.JSON(200, ToDTOs(units))
}

func (a *httpController) Read(ctx core.Context) error {
	unitID, err := core.IntParam(ctx, "unitID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid unit id")
	}

	unit, err := a.unitRepository.Read(unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "unit not found")
		}
		return echo.NewHTTPError(500, "could not read unit").WithInternal(err)
	}

	return ctx.JSON(200, ToDTO(unit))
}

func (a *httpController) Create(ctx core.Context) error {
	var req createRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	// units can only hang off an existing property
	if _, err := a.propertyRepository.Read(req.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(400, "property does not exist")
		}
		return echo.NewHTTPError(500, "could not verify property").WithInternal(err)
	}

	unit := req.toModel()

	imageURL, imageURLs, err := a.uploadImages(ctx, req.Image, req.Images)
	if err != nil {
		return err
	}
	if imageURL != nil {
		unit.ImageURL = imageURL
	}
	if len(imageURLs) > 0 {
		unit.Images = imageURLs
	}

	if err := a.unitRepository.Create(nil, &unit); err != nil {
		return echo.NewHTTPError(500, "could not create unit").WithInternal(err)
	}

	return ctx.JSON(200, ToDTO(unit))
}

func (a *httpController) Update(ctx core.Context) error {
	unitID, err := core.IntParam(ctx, "unitID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid unit id")
	}

	unit, err := a.unitRepository.Read(unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "unit not found")
		}
		return echo.NewHTTPError(500, "could not read unit").WithInternal(err)
	}

	var req patchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	updated := req.applyToModel(&unit)

	imageURL, imageURLs, err := a.uploadImages(ctx, req.Image, req.Images)
	if err != nil {
		return err
	}
	if imageURL != nil {
		unit.ImageURL = imageURL
		updated = true
	}
	if len(imageURLs) > 0 {
		unit.Images = imageURLs
		updated = true
	}

	if updated {
		if err := a.unitRepository.Update(nil, &unit); err != nil {
			return echo.NewHTTPError(500, "could not update unit").WithInternal(err)
		}
	}

	return ctx.JSON(200, ToDTO(unit))
}

func (a *httpController) Delete(ctx core.Context) error {
	unitID, err := core.IntParam(ctx, "unitID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid unit id")
	}

	if err := a.unitRepository.DeleteByID(nil, unitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "unit not found - it may have been deleted by another session").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not delete unit").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (a *httpController) uploadImages(ctx core.Context, image *imagePayload, images []imagePayload) (*string, []string, error) {
	var imageURL *string

	if image != nil {
		file, err := image.toFile()
		if err != nil {
			return nil, nil, echo.NewHTTPError(400, err.Error())
		}
		url, err := a.storageClient.Upload(ctx.Request().Context(), storage.BucketUnitImages, storage.ObjectName(storage.FolderUnits, file.Name), file.Data, file.ContentType)
		if err != nil {
			return nil, nil, echo.NewHTTPError(502, "could not upload primary image").WithInternal(err)
		}
		imageURL = &url
	}

	var imageURLs []string
	if len(images) > 0 {
		files, err := toFiles(images)
		if err != nil {
			return nil, nil, echo.NewHTTPError(400, err.Error())
		}
		urls, err := storage.UploadBatch(ctx.Request().Context(), a.storageClient, storage.BucketUnitImages, storage.FolderUnits, files)
		if err != nil {
			return nil, nil, echo.NewHTTPError(502, fmt.Sprintf("image upload failed after %d of %d images", len(urls), len(files))).WithInternal(err)
		}
		imageURLs = urls
	}

	return imageURL, imageURLs, nil
}
