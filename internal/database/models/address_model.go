package models

type Address struct {
	ID   int    `json:"id" gorm:"primarykey"`
	Text string `json:"text" gorm:"column:address;type:text;not null"`
}

func (m Address) TableName() string {
	return "addresses"
}

func (m Address) GetID() int {
	return m.ID
}
