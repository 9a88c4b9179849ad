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

type propertyRepository struct {
	db core.DB
	*database.GormRepository[int, models.Property]
}

func NewPropertyRepository(db core.DB) *propertyRepository {
	if err := db.AutoMigrate(&models.Property{}); err != nil {
		panic(err)
	}
	return &propertyRepository{
		db:             db,
		GormRepository: database.NewGormRepository[int, models.Property](db),
	}
}

func (g *propertyRepository) ReadWithRelations(id int) (models.Property, error) {
	var property models.Property
	err := g.db.Preload("Area").Preload("Address").First(&property, id).Error
	return property, err
}

func (g *propertyRepository) All() ([]models.Property, error) {
	var properties []models.Property
	err := g.db.Preload("Area").Preload("Address").Order("id ASC").Find(&properties).Error
	return properties, err
}

// GetByAreaID returns the properties of an area together with everything the
// public listing needs: area name, address text and the nested units.
func (g *propertyRepository) GetByAreaID(areaID int) ([]models.Property, error) {
	var properties []models.Property
	err := g.db.Preload("Area").Preload("Address").Preload("Units").
		Where("area_id = ?", areaID).Find(&properties).Error
	return properties, err
}

// DeleteByID reports gorm.ErrRecordNotFound when nothing was deleted, so a
// vanished record (another admin got there first) is distinguishable from a
// successful delete.
func (g *propertyRepository) DeleteByID(tx core.DB, id int) error {
	res := g.GetDB(tx).Delete(&models.Property{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
