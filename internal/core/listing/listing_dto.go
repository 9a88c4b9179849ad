package listing

import (
	"github.com/letme-homes/letme/internal/database/models"
	"github.com/letme-homes/letme/internal/utils"
)

type PropertySummary struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	AreaID      int      `json:"areaId"`
	AreaName    string   `json:"areaName"`
	Address     string   `json:"address"`
	PlusCode    *string  `json:"plusCode,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Images      []string `json:"images,omitempty"`

	AvailableCount    int      `json:"availableCount"`
	MinPrice          *float64 `json:"minPrice,omitempty"`
	MaxPrice          *float64 `json:"maxPrice,omitempty"`
	PriceRange        string   `json:"priceRange,omitempty"`
	HasAvailableUnits bool     `json:"hasAvailableUnits"`
	// UnitsLink is only set when at least one unit is available - the
	// "view units" affordance must not exist otherwise.
	UnitsLink string `json:"unitsLink,omitempty"`
}

func toSummary(property models.Property) PropertySummary {
	return PropertySummary{
		ID:          property.ID,
		Name:        property.DisplayName(),
		AreaID:      property.AreaID,
		AreaName:    property.Area.Name,
		Address:     property.Address.Text,
		PlusCode:    property.PlusCode,
		Description: property.Description,
		ImageURL:    property.ImageURL,
		Images:      property.Images,
	}
}

type UnitDTO struct {
	ID             int      `json:"id"`
	PropertyID     int      `json:"propertyId"`
	Name           string   `json:"name"`
	MonthlyPrice   float64  `json:"monthlyPrice"`
	PriceFormatted string   `json:"priceFormatted"`
	Available      bool     `json:"available"`
	Description    *string  `json:"description,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	Images         []string `json:"images,omitempty"`
}

func toUnitDTO(unit models.Unit) UnitDTO {
	return UnitDTO{
		ID:             unit.ID,
		PropertyID:     unit.PropertyID,
		Name:           unit.Name,
		MonthlyPrice:   unit.MonthlyPrice,
		PriceFormatted: formatPrice(unit.MonthlyPrice),
		Available:      unit.Available,
		Description:    unit.Description,
		ImageURL:       unit.ImageURL,
		Images:         unit.Images,
	}
}

type PropertyDetailsDTO struct {
	PropertySummary
	Units []UnitDTO `json:"units"`
}

func toDetailsDTO(property models.Property, availableUnits []models.Unit) PropertyDetailsDTO {
	property.Units = availableUnits
	return PropertyDetailsDTO{
		PropertySummary: summarizeProperty(property),
		Units:           utils.Map(availableUnits, toUnitDTO),
	}
}

type AreaDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func toAreaDTO(area models.Area) AreaDTO {
	return AreaDTO{
		ID:   area.ID,
		Name: area.Name,
	}
}
