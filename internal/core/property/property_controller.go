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

package property

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/storage"
	"github.com/letme-homes/letme/internal/utils"
	"gorm.io/gorm"
)

type deleteService interface {
	DeleteProperty(id int) (DeleteOutcome, error)
	CascadeDeleteProperty(id int) (DeleteOutcome, error)
}

type httpController struct {
	propertyRepository core.PropertyRepository
	addressRepository  core.AddressRepository
	propertyService    deleteService
	storageClient      storage.Client
}

func NewHTTPController(propertyRepository core.PropertyRepository, addressRepository core.AddressRepository, propertyService deleteService, storageClient storage.Client) *httpController {
	return &httpController{
		propertyRepository: propertyRepository,
		addressRepository:  addressRepository,
		propertyService:    propertyService,
		storageClient:      storageClient,
	}
}

func (a *httpController) List(ctx core.Context) error {
	properties, err := a.propertyRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list properties").WithInternal(err)
	}

	return ctx.JSON(200, ToDTOs(properties))
}

func (a *httpController) ListAddresses(ctx core.Context) error {
	addresses, err := a.addressRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list addresses").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(addresses, toAddressDTO))
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

	return ctx.JSON(200, ToDTO(property))
}

func (a *httpController) Create(ctx core.Context) error {
	var req createRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	property := req.toModel()

	imageURL, imageURLs, err := a.uploadImages(ctx, req.Image, req.Images)
	if err != nil {
		return err
	}
	if imageURL != nil {
		property.ImageURL = imageURL
	}
	if len(imageURLs) > 0 {
		property.Images = imageURLs
	}

	if err := a.propertyRepository.Create(nil, &property); err != nil {
		return echo.NewHTTPError(500, "could not create property").WithInternal(err)
	}

	return ctx.JSON(200, ToDTO(property))
}

func (a *httpController) Update(ctx core.Context) error {
	propertyID, err := core.IntParam(ctx, "propertyID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid property id")
	}

	property, err := a.propertyRepository.Read(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "property not found")
		}
		return echo.NewHTTPError(500, "could not read property").WithInternal(err)
	}

	var req patchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	updated := req.applyToModel(&property)

	imageURL, imageURLs, err := a.uploadImages(ctx, req.Image, req.Images)
	if err != nil {
		return err
	}
	if imageURL != nil {
		property.ImageURL = imageURL
		updated = true
	}
	if len(imageURLs) > 0 {
		property.Images = imageURLs
		updated = true
	}

	if updated {
		if err := a.propertyRepository.Update(nil, &property); err != nil {
			return echo.NewHTTPError(500, "could not update property").WithInternal(err)
		}
	}

	return ctx.JSON(200, ToDTO(property))
}

// Delete runs the dependency-aware delete workflow. With dependent units
// nothing is deleted and the client receives the exact count plus a 409 so
// it can ask for cascade confirmation. After a successful delete clients
// must refetch their listings - responses never carry updated collections.
func (a *httpController) Delete(ctx core.Context) error {
	propertyID, err := core.IntParam(ctx, "propertyID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid property id")
	}

	outcome, err := a.propertyService.DeleteProperty(propertyID)
	if err != nil {
		return mapDeleteError(err)
	}

	if outcome.State == DeleteStateAwaitingCascadeConfirmation {
		return ctx.JSON(409, outcome)
	}

	return ctx.JSON(200, outcome)
}

// CascadeDelete is the explicit confirmation counterpart of Delete.
func (a *httpController) CascadeDelete(ctx core.Context) error {
	propertyID, err := core.IntParam(ctx, "propertyID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid property id")
	}

	outcome, err := a.propertyService.CascadeDeleteProperty(propertyID)
	if err != nil {
		return mapDeleteError(err)
	}

	return ctx.JSON(200, outcome)
}

func mapDeleteError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(404, "property not found - it may have been deleted by another session").WithInternal(err)
	}

	var dependencyErr *DependencyCheckError
	if errors.As(err, &dependencyErr) {
		return echo.NewHTTPError(500, "could not check dependent units").WithInternal(err)
	}

	var cascadeErr *CascadeError
	if errors.As(err, &cascadeErr) {
		return echo.NewHTTPError(500, fmt.Sprintf("cascade delete failed during the %s phase - re-check properties and units", cascadeErr.Phase)).WithInternal(err)
	}

	return echo.NewHTTPError(500, "could not delete property").WithInternal(err)
}

func (a *httpController) uploadImages(ctx core.Context, image *imagePayload, images []imagePayload) (*string, []string, error) {
	var imageURL *string

	if image != nil {
		file, err := image.toFile()
		if err != nil {
			return nil, nil, echo.NewHTTPError(400, err.Error())
		}
		url, err := a.storageClient.Upload(ctx.Request().Context(), storage.BucketPropertyImages, storage.ObjectName(storage.FolderProperties, file.Name), file.Data, file.ContentType)
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
		urls, err := storage.UploadBatch(ctx.Request().Context(), a.storageClient, storage.BucketPropertyImages, storage.FolderProperties, files)
		if err != nil {
			// earlier uploads stay persisted - report how far the batch got
			return nil, nil, echo.NewHTTPError(502, fmt.Sprintf("image upload failed after %d of %d images", len(urls), len(files))).WithInternal(err)
		}
		imageURLs = urls
	}

	return imageURL, imageURLs, nil
}
