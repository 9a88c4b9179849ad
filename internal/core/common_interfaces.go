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

package core

import (
	"github.com/google/uuid"
	"github.com/letme-homes/letme/internal/database/models"
)

type AreaRepository interface {
	Read(id int) (models.Area, error)
	All() ([]models.Area, error)
}

type AddressRepository interface {
	All() ([]models.Address, error)
}

type PropertyRepository interface {
	Create(tx DB, property *models.Property) error
	Read(id int) (models.Property, error)
	ReadWithRelations(id int) (models.Property, error)
	Update(tx DB, property *models.Property) error
	DeleteByID(tx DB, id int) error
	All() ([]models.Property, error)
	GetByAreaID(areaID int) ([]models.Property, error)
	Transaction(fn func(tx DB) error) error
}

type UnitRepository interface {
	Create(tx DB, unit *models.Unit) error
	Read(id int) (models.Unit, error)
	Update(tx DB, unit *models.Unit) error
	DeleteByID(tx DB, id int) error
	All() ([]models.Unit, error)
	GetByPropertyID(propertyID int) ([]models.Unit, error)
	GetAvailableByPropertyID(propertyID int) ([]models.Unit, error)
	CountByPropertyID(propertyID int) (int64, error)
	DeleteByPropertyID(tx DB, propertyID int) (int64, error)
}

type AdminUserRepository interface {
	FindByID(id uuid.UUID) (models.AdminUser, error)
	Create(tx DB, adminUser *models.AdminUser) error
}
