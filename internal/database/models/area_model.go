package models

// Area is immutable reference data. The public site groups properties by
// area (one area per town, e.g. Portsmouth or Weymouth).
type Area struct {
	ID   int    `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (m Area) TableName() string {
	return "areas"
}

func (m Area) GetID() int {
	return m.ID
}
