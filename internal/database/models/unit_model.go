package models

import "time"

// Unit is an individually rentable room or flat. It always belongs to
// exactly one property.
type Unit struct {
	ID        int       `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PropertyID   int       `json:"propertyId" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	MonthlyPrice float64   `json:"monthlyPrice" gorm:"type:numeric;not null"`
	Available    bool      `json:"available" gorm:"not null;default:false"`
	Description  *string   `json:"description" gorm:"type:text"`
	ImageURL     *string   `json:"imageUrl" gorm:"type:text"`
	Images       ImageList `json:"images" gorm:"type:text"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

func (m Unit) TableName() string {
	return "units"
}

func (m Unit) GetID() int {
	return m.ID
}
