package repositories

import (
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/database"
	"github.com/letme-homes/letme/internal/database/models"
)

type addressRepository struct {
	db core.DB
	*database.GormRepository[int, models.Address]
}

func NewAddressRepository(db core.DB) *addressRepository {
	if err := db.AutoMigrate(&models.Address{}); err != nil {
		panic(err)
	}
	return &addressRepository{
		db:             db,
		GormRepository: database.NewGormRepository[int, models.Address](db),
	}
}

func (g *addressRepository) All() ([]models.Address, error) {
	var addresses []models.Address
	err := g.db.Order("id ASC").Find(&addresses).Error
	return addresses, err
}
