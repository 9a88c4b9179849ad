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

package property

import (
	"fmt"

	"github.com/letme-homes/letme/internal/core"
)

type DeleteState string

const (
	DeleteStateDone DeleteState = "done"
	// DeleteStateAwaitingCascadeConfirmation means nothing was deleted:
	// the property still has dependent units and the caller has to confirm
	// the cascade through the explicit cascade operation.
	DeleteStateAwaitingCascadeConfirmation DeleteState = "awaiting-cascade-confirmation"
)

type DeleteOutcome struct {
	State      DeleteState `json:"state"`
	UnitsCount int64       `json:"unitsCount,omitempty"`
}

// DependencyCheckError marks a failed dependent-units count query. It is
// distinct from "zero dependents" - with this error nothing is known about
// the property's units and no delete is attempted.
type DependencyCheckError struct {
	Err error
}

func (e *DependencyCheckError) Error() string {
	return "could not check dependent units: " + e.Err.Error()
}

func (e *DependencyCheckError) Unwrap() error {
	return e.Err
}

type CascadePhase string

const (
	CascadePhaseUnits    CascadePhase = "units"
	CascadePhaseProperty CascadePhase = "property"
)

// CascadeError reports which phase of a confirmed cascade delete failed.
// The surrounding transaction is rolled back either way, but the operator
// still needs to know where it went wrong to re-check the data.
type CascadeError struct {
	Phase CascadePhase
	Err   error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade delete failed during %s phase: %v", e.Phase, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}

type service struct {
	propertyRepository core.PropertyRepository
	unitRepository     core.UnitRepository
}

func NewService(propertyRepository core.PropertyRepository, unitRepository core.UnitRepository) *service {
	return &service{
		propertyRepository: propertyRepository,
		unitRepository:     unitRepository,
	}
}

// DeleteProperty deletes a property only if it has no dependent units.
// With dependents it deletes nothing and reports the exact count, so the
// caller can ask the operator for an informed cascade confirmation.
func (s *service) DeleteProperty(id int) (DeleteOutcome, error) {
	count, err := s.unitRepository.CountByPropertyID(id)
	if err != nil {
		return DeleteOutcome{}, &DependencyCheckError{Err: err}
	}

	if count > 0 {
		return DeleteOutcome{
			State:      DeleteStateAwaitingCascadeConfirmation,
			UnitsCount: count,
		}, nil
	}

	if err := s.propertyRepository.DeleteByID(nil, id); err != nil {
		// gorm.ErrRecordNotFound passes through untouched: another admin
		// session may have deleted the property in the meantime, which is a
		// benign race, not a workflow failure.
		return DeleteOutcome{}, err
	}

	return DeleteOutcome{State: DeleteStateDone}, nil
}

// CascadeDeleteProperty removes all dependent units and the property itself
// in a single transaction. It must only be called after an explicit
// confirmation - DeleteProperty never escalates on its own.
func (s *service) CascadeDeleteProperty(id int) (DeleteOutcome, error) {
	var unitsCount int64
	err := s.propertyRepository.Transaction(func(tx core.DB) error {
		deleted, err := s.unitRepository.DeleteByPropertyID(tx, id)
		if err != nil {
			return &CascadeError{Phase: CascadePhaseUnits, Err: err}
		}
		unitsCount = deleted

		if err := s.propertyRepository.DeleteByID(tx, id); err != nil {
			return &CascadeError{Phase: CascadePhaseProperty, Err: err}
		}
		return nil
	})
	if err != nil {
		return DeleteOutcome{}, err
	}

	return DeleteOutcome{State: DeleteStateDone, UnitsCount: unitsCount}, nil
}
