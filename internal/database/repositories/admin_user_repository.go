package repositories

import (
	"github.com/google/uuid"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/database/models"
)

type adminUserRepository struct {
	db core.DB
}

func NewAdminUserRepository(db core.DB) *adminUserRepository {
	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		panic(err)
	}
	return &adminUserRepository{
		db: db,
	}
}

func (g *adminUserRepository) FindByID(id uuid.UUID) (models.AdminUser, error) {
	var adminUser models.AdminUser
	err := g.db.Where("id = ?", id).First(&adminUser).Error
	return adminUser, err
}

func (g *adminUserRepository) Create(tx core.DB, adminUser *models.AdminUser) error {
	if tx == nil {
		tx = g.db
	}
	return tx.Create(adminUser).Error
}
