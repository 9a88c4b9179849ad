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

package property_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/core/property"
	"github.com/letme-homes/letme/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestDeleteProperty(t *testing.T) {
	t.Run("should delete directly when there are no dependent units", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		unitRepository.On("CountByPropertyID", 1).Return(int64(0), nil)
		propertyRepository.On("DeleteByID", mock.Anything, 1).Return(nil)

		s := property.NewService(propertyRepository, unitRepository)

		outcome, err := s.DeleteProperty(1)

		assert.NoError(t, err)
		assert.Equal(t, property.DeleteStateDone, outcome.State)
	})

	t.Run("should delete nothing and report the count when dependents exist", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		unitRepository.On("CountByPropertyID", 1).Return(int64(3), nil)

		s := property.NewService(propertyRepository, unitRepository)

		outcome, err := s.DeleteProperty(1)

		assert.NoError(t, err)
		assert.Equal(t, property.DeleteStateAwaitingCascadeConfirmation, outcome.State)
		assert.Equal(t, int64(3), outcome.UnitsCount)
		propertyRepository.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("should report a failed dependency check distinctly", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		unitRepository.On("CountByPropertyID", 1).Return(int64(0), fmt.Errorf("connection refused"))

		s := property.NewService(propertyRepository, unitRepository)

		_, err := s.DeleteProperty(1)

		var dependencyErr *property.DependencyCheckError
		assert.ErrorAs(t, err, &dependencyErr)
		propertyRepository.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("should pass through a vanished record as not found", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		unitRepository.On("CountByPropertyID", 1).Return(int64(0), nil)
		propertyRepository.On("DeleteByID", mock.Anything, 1).Return(gorm.ErrRecordNotFound)

		s := property.NewService(propertyRepository, unitRepository)

		_, err := s.DeleteProperty(1)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCascadeDeleteProperty(t *testing.T) {
	runTransaction := func(fn func(tx core.DB) error) error {
		return fn(nil)
	}

	t.Run("should delete units and property in one transaction", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		propertyRepository.On("Transaction", mock.Anything).Return(runTransaction)
		unitRepository.On("DeleteByPropertyID", mock.Anything, 1).Return(int64(3), nil)
		propertyRepository.On("DeleteByID", mock.Anything, 1).Return(nil)

		s := property.NewService(propertyRepository, unitRepository)

		outcome, err := s.CascadeDeleteProperty(1)

		assert.NoError(t, err)
		assert.Equal(t, property.DeleteStateDone, outcome.State)
		assert.Equal(t, int64(3), outcome.UnitsCount)
	})

	t.Run("should not touch the property when the unit phase fails", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		propertyRepository.On("Transaction", mock.Anything).Return(runTransaction)
		unitRepository.On("DeleteByPropertyID", mock.Anything, 1).Return(int64(0), fmt.Errorf("permission denied"))

		s := property.NewService(propertyRepository, unitRepository)

		_, err := s.CascadeDeleteProperty(1)

		var cascadeErr *property.CascadeError
		assert.ErrorAs(t, err, &cascadeErr)
		assert.Equal(t, property.CascadePhaseUnits, cascadeErr.Phase)
		propertyRepository.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("should tag a property phase failure distinctly", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		propertyRepository.On("Transaction", mock.Anything).Return(runTransaction)
		unitRepository.On("DeleteByPropertyID", mock.Anything, 1).Return(int64(3), nil)
		propertyRepository.On("DeleteByID", mock.Anything, 1).Return(fmt.Errorf("deadlock detected"))

		s := property.NewService(propertyRepository, unitRepository)

		_, err := s.CascadeDeleteProperty(1)

		var cascadeErr *property.CascadeError
		assert.ErrorAs(t, err, &cascadeErr)
		assert.Equal(t, property.CascadePhaseProperty, cascadeErr.Phase)
	})

	t.Run("should keep a vanished record detectable through the cascade error", func(t *testing.T) {
		propertyRepository := mocks.NewPropertyRepository(t)
		unitRepository := mocks.NewUnitRepository(t)

		propertyRepository.On("Transaction", mock.Anything).Return(runTransaction)
		unitRepository.On("DeleteByPropertyID", mock.Anything, 1).Return(int64(0), nil)
		propertyRepository.On("DeleteByID", mock.Anything, 1).Return(gorm.ErrRecordNotFound)

		s := property.NewService(propertyRepository, unitRepository)

		_, err := s.CascadeDeleteProperty(1)

		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}
