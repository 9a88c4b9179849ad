package repositories

import (
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/database"
	"github.com/letme-homes/letme/internal/database/models"
)

type areaRepository struct {
	db core.DB
	*database.GormRepository[int, models.Area]
}

func NewAreaRepository(db core.DB) *areaRepository {
	if err := db.AutoMigrate(&models.Area{}); err != nil {
		panic(err)
	}
	return &areaRepository{
		db:             db,
		GormRepository: database.NewGormRepository[int, models.Area](db),
	}
}

func (g *areaRepository) All() ([]models.Area, error) {
	var areas []models.Area
	err := g.db.Order("name ASC").Find(&areas).Error
	return areas, err
}
