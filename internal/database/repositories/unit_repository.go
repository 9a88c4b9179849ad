// Copyright (C) 2024 LetMe Accommodation Ltd.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/database"
	"github.com/letme-homes/letme/internal/database/models"
	"gorm.io/gorm"
)

type unitRepository struct {
	db core.DB
	*database.GormRepository[int, models.Unit]
}

func NewUnitRepository(db core.DB) *unitRepository {
	if err := db.AutoMigrate(&models.Unit{}); err != nil {
		panic(err)
	}
	return &unitRepository{
		db:             db,
		GormRepository: database.NewGormRepository[int, models.Unit](db),
	}
}

func (g *unitRepository) All() ([]models.Unit, error) {
	var units []models.Unit
	err := g.db.Preload("Property").Order("id ASC").Find(&units).Error
	return units, err
}

func (g *unitRepository) GetByPropertyID(propertyID int) ([]models.Unit, error) {
	var units []models.Unit
	err := g.db.Where("property_id = ?", propertyID).Find(&units).Error
	return units, err
}

func (g *unitRepository) GetAvailableByPropertyID(propertyID int) ([]models.Unit, error) {
	var units []models.Unit
	err := g.db.Where("property_id = ? AND available = ?", propertyID, true).
		Order("monthly_price ASC").Find(&units).Error
	return units, err
}

func (g *unitRepository) CountByPropertyID(propertyID int) (int64, error) {
	var count int64
	err := g.db.Model(&models.Unit{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

func (g *unitRepository) DeleteByPropertyID(tx core.DB, propertyID int) (int64, error) {
	res := g.GetDB(tx).Where("property_id = ?", propertyID).Delete(&models.Unit{})
	return res.RowsAffected, res.Error
}

func (g *unitRepository) DeleteByID(tx core.DB, id int) error {
	res := g.GetDB(tx).Delete(&models.Unit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
