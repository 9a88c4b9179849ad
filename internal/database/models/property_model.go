package models

import "time"

// Property is a building or site containing rentable units. Deleting a
// property never cascades at the schema level - the admin workflow decides
// whether dependent units may be removed together with it.
type Property struct {
	ID        int       `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        *string   `json:"name" gorm:"type:varchar(255)"`
	AreaID      int       `json:"areaId" gorm:"not null"`
	AddressID   int       `json:"addressId" gorm:"not null"`
	PlusCode    *string   `json:"plusCode" gorm:"type:varchar(255)"`
	Description *string   `json:"description" gorm:"type:text"`
	ImageURL    *string   `json:"imageUrl" gorm:"type:text"`
	Images      ImageList `json:"images" gorm:"type:text"`

	Area    Area    `json:"area" gorm:"foreignKey:AreaID"`
	Address Address `json:"address" gorm:"foreignKey:AddressID"`
	Units   []Unit  `json:"units" gorm:"foreignKey:PropertyID"`
}

func (m Property) TableName() string {
	return "properties"
}

func (m Property) GetID() int {
	return m.ID
}

// DisplayName is what listings show when a property was saved without a name.
func (m Property) DisplayName() string {
	if m.Name != nil && *m.Name != "" {
		return *m.Name
	}
	return ""
}
