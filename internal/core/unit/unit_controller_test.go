package unit_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/core/unit"
	"github.com/letme-homes/letme/internal/database/models"
	"github.com/letme-homes/letme/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreate(t *testing.T) {
	t.Run("should reject a unit for a property that does not exist", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		propertyRepository.On("Read", 99).Return(models.Property{}, gorm.ErrRecordNotFound)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, _ := newContext(http.MethodPost, `{"propertyId": 99, "name": "Room 1", "monthlyPrice": 650}`)

		err := controller.Create(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
		unitRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should create a unit when the property exists", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		propertyRepository.On("Read", 1).Return(models.Property{ID: 1}, nil)
		unitRepository.On("Create", mock.Anything, mock.MatchedBy(func(u *models.Unit) bool {
			return u.PropertyID == 1 && u.Name == "Room 1" && u.MonthlyPrice == 650 && u.Available
		})).Return(nil)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, rec := newContext(http.MethodPost, `{"propertyId": 1, "name": "Room 1", "monthlyPrice": 650, "available": true}`)

		err := controller.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should reject an invalid payload", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, _ := newContext(http.MethodPost, `{"monthlyPrice": 650}`)

		err := controller.Create(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("should only persist when something changed", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		unitRepository.On("Read", 5).Return(models.Unit{ID: 5, Name: "Room 1"}, nil)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, rec := newContext(http.MethodPatch, `{}`)
		ctx.SetParamNames("unitID")
		ctx.SetParamValues("5")

		err := controller.Update(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		unitRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject a negative monthly price before any mutation", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		unitRepository.On("Read", 5).Return(models.Unit{ID: 5, Name: "Room 1", MonthlyPrice: 650}, nil)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, _ := newContext(http.MethodPatch, `{"monthlyPrice": -5}`)
		ctx.SetParamNames("unitID")
		ctx.SetParamValues("5")

		err := controller.Update(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
		unitRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should apply a partial update", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		unitRepository.On("Read", 5).Return(models.Unit{ID: 5, Name: "Room 1", Available: true}, nil)
		unitRepository.On("Update", mock.Anything, mock.MatchedBy(func(u *models.Unit) bool {
			return u.ID == 5 && u.Name == "Room 1" && !u.Available
		})).Return(nil)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, _ := newContext(http.MethodPatch, `{"available": false}`)
		ctx.SetParamNames("unitID")
		ctx.SetParamValues("5")

		err := controller.Update(ctx)

		assert.NoError(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Run("should delete a unit", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		unitRepository.On("DeleteByID", mock.Anything, 5).Return(nil)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, rec := newContext(http.MethodDelete, "")
		ctx.SetParamNames("unitID")
		ctx.SetParamValues("5")

		err := controller.Delete(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should report a vanished unit as not found", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		unitRepository.On("DeleteByID", mock.Anything, 5).Return(gorm.ErrRecordNotFound)

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, _ := newContext(http.MethodDelete, "")
		ctx.SetParamNames("unitID")
		ctx.SetParamValues("5")

		err := controller.Delete(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should surface database failures as internal errors", func(t *testing.T) {
		unitRepository := mocks.NewUnitRepository(t)
		propertyRepository := mocks.NewPropertyRepository(t)
		storageClient := mocks.NewStorageClient(t)

		unitRepository.On("DeleteByID", mock.Anything, 5).Return(fmt.Errorf("connection refused"))

		controller := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)

		ctx, _ := newContext(http.MethodDelete, "")
		ctx.SetParamNames("unitID")
		ctx.SetParamValues("5")

		err := controller.Delete(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 500, httpErr.Code)
	})
}
