package property

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
	Name        string `json:"name" validate:"required"`
	AreaID      int    `json:"areaId" validate:"required"`
	AddressID   int    `json:"addressId" validate:"required"`
	PlusCode    string `json:"plusCode"`
	Description string `json:"description"`

	Image  *imagePayload  `json:"image"`
	Images []imagePayload `json:"images"`
}

func (a *createRequest) toModel() models.Property {
	property := models.Property{
		Name:      utils.Ptr(a.Name),
		AreaID:    a.AreaID,
		AddressID: a.AddressID,
	}
	if a.PlusCode != "" {
		property.PlusCode = utils.Ptr(a.PlusCode)
	}
	if a.Description != "" {
		property.Description = utils.Ptr(a.Description)
	}
	return property
}

type patchRequest struct {
	Name        *string `json:"name"`
	AreaID      *int    `json:"areaId"`
	AddressID   *int    `json:"addressId"`
	PlusCode    *string `json:"plusCode"`
	Description *string `json:"description"`

	Image  *imagePayload  `json:"image"`
	Images []imagePayload `json:"images"`
}

func (p *patchRequest) applyToModel(property *models.Property) bool {
	updated := false
	if p.Name != nil {
		updated = true
		property.Name = p.Name
	}
	if p.AreaID != nil {
		updated = true
		property.AreaID = *p.AreaID
	}
	if p.AddressID != nil {
		updated = true
		property.AddressID = *p.AddressID
	}
	if p.PlusCode != nil {
		updated = true
		property.PlusCode = p.PlusCode
	}
	if p.Description != nil {
		updated = true
		property.Description = p.Description
	}
	return updated
}

type PropertyDTO struct {
	ID          int      `json:"id"`
	Name        *string  `json:"name"`
	AreaID      int      `json:"areaId"`
	AreaName    string   `json:"areaName,omitempty"`
	AddressID   int      `json:"addressId"`
	Address     string   `json:"address,omitempty"`
	PlusCode    *string  `json:"plusCode,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Images      []string `json:"images,omitempty"`
}

func ToDTO(property models.Property) PropertyDTO {
	return PropertyDTO{
		ID:          property.ID,
		Name:        property.Name,
		AreaID:      property.AreaID,
		AreaName:    property.Area.Name,
		AddressID:   property.AddressID,
		Address:     property.Address.Text,
		PlusCode:    property.PlusCode,
		Description: property.Description,
		ImageURL:    property.ImageURL,
		Images:      property.Images,
	}
}

func ToDTOs(properties []models.Property) []PropertyDTO {
	return utils.Map(properties, ToDTO)
}

type AddressDTO struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func toAddressDTO(address models.Address) AddressDTO {
	return AddressDTO{
		ID:   address.ID,
		Text: address.Text,
	}
}
