package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser enrolls an authenticated identity as an administrator. Any
// identity that successfully signs in gets a row here on first login -
// there are no privilege levels beyond membership.
type AdminUser struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m AdminUser) TableName() string {
	return "admin_users"
}
