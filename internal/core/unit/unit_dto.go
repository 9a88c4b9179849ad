package unit

import (
	"encoding/base64"

	"github.com/letme-homes/letme/internal/database/models"
	"github.com/letme-homes/letme/internal/storage"
	"github.com/letme-homes/letme/internal/utils"
	"github.com/pkg/errors"
)

type imagePayload struct {
	Name        string `json:"name" validate:"required"`
	ContentType string `json:"contentType"`
	Data        string `json:"data" validate:"required"`
}

func (i imagePayload) toFile() (storage.File, error) {
	data, err := base64.StdEncoding.DecodeString(i.Data)
	if err != nil {
		return storage.File{}, errors.Wrap(err, "image data is not valid base64")
	}

	contentType := i.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return storage.File{
		Name:        i.Name,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func toFiles(payloads []imagePayload) ([]storage.File, error) {
	files := make([]storage.File, 0, len(payloads))
	for _, payload := range payloads {
		file, err := payload.toFile()
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

type createRequest struct {
	PropertyID   int     `json:"propertyId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	MonthlyPrice float64 `json:"monthlyPrice" validate:"gte=0"`
	Available    bool    `json:"available"`
	Description  string  `json:"description"`

	Image  *imagePayload  `json:"image"`
	Images []imagePayload `json:"images"`
}

func (a *createRequest) toModel() models.Unit {
	unit := models.Unit{
		PropertyID:   a.PropertyID,
		Name:         a.Name,
		MonthlyPrice: a.MonthlyPrice,
		Available:    a.Available,
	}
	if a.Description != "" {
		unit.Description = utils.Ptr(a.Description)
	}
	return unit
}

type patchRequest struct {
	Name         *string  `json:"name"`
	MonthlyPrice *float64 `json:"monthlyPrice" validate:"omitempty,gte=0"`
	Available    *bool    `json:"available"`
	Description  *string  `json:"description"`

	Image  *imagePayload  `json:"image"`
	Images []imagePayload `json:"images"`
}

func (p *patchRequest) applyToModel(unit *models.Unit) bool {
	updated := false
	if p.Name != nil {
		updated = true
		unit.Name = *p.Name
	}
	if p.MonthlyPrice != nil {
		updated = true
		unit.MonthlyPrice = *p.MonthlyPrice
	}
	if p.Available != nil {
		updated = true
		unit.Available = *p.Available
	}
	if p.Description != nil {
		updated = true
		unit.Description = p.Description
	}
	return updated
}

type UnitDTO struct {
	ID           int      `json:"id"`
	PropertyID   int      `json:"propertyId"`
	PropertyName string   `json:"propertyName,omitempty"`
	Name         string   `json:"name"`
	MonthlyPrice float64  `json:"monthlyPrice"`
	Available    bool     `json:"available"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Images       []string `json:"images,omitempty"`
}

func ToDTO(unit models.Unit) UnitDTO {
	dto := UnitDTO{
		ID:           unit.ID,
		PropertyID:   unit.PropertyID,
		Name:         unit.Name,
		MonthlyPrice: unit.MonthlyPrice,
		Available:    unit.Available,
		Description:  unit.Description,
		ImageURL:     unit.ImageURL,
		Images:       unit.Images,
	}
	if unit.Property != nil {
		dto.PropertyName = unit.Property.DisplayName()
	}
	return dto
}

func ToDTOs(units []models.Unit) []UnitDTO {
	return utils.Map(units, ToDTO)
}
