package auth_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/auth"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/database/models"
	"github.com/letme-homes/letme/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func nextSpy(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return nil
	}
}

func TestAdminEnrollmentMiddleware(t *testing.T) {
	userID := uuid.New()

	t.Run("should reject requests without a session", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		ctx := newContext()
		core.SetSession(ctx, auth.NoSession)

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 401, httpErr.Code)
		assert.False(t, called)
	})

	t.Run("should enroll an identity on first login", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		adminUserRepository.On("FindByID", userID).Return(models.AdminUser{}, gorm.ErrRecordNotFound)
		adminUserRepository.On("Create", mock.Anything, mock.MatchedBy(func(u *models.AdminUser) bool {
			return u.ID == userID && u.Email == "admin@letme.com"
		})).Return(nil)

		ctx := newContext()
		core.SetSession(ctx, auth.NewSession(userID.String(), "admin@letme.com"))

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, userID, core.GetAdminUser(ctx).ID)
	})

	t.Run("should pass an already enrolled identity straight through", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		adminUserRepository.On("FindByID", userID).Return(models.AdminUser{ID: userID, Email: "admin@letme.com"}, nil)

		ctx := newContext()
		core.SetSession(ctx, auth.NewSession(userID.String(), "admin@letme.com"))

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
		adminUserRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should not mistake a transient lookup failure for a first login", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		adminUserRepository.On("FindByID", userID).Return(models.AdminUser{}, fmt.Errorf("connection refused"))

		ctx := newContext()
		core.SetSession(ctx, auth.NewSession(userID.String(), "admin@letme.com"))

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 500, httpErr.Code)
		assert.False(t, called)
		adminUserRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should treat a duplicate key race as already enrolled", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		adminUserRepository.On("FindByID", userID).Return(models.AdminUser{}, gorm.ErrRecordNotFound)
		adminUserRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"admin_users_pkey\" (SQLSTATE 23505)"))

		ctx := newContext()
		core.SetSession(ctx, auth.NewSession(userID.String(), "admin@letme.com"))

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should reject an identity id that is not a uuid", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		ctx := newContext()
		core.SetSession(ctx, auth.NewSession("not-a-uuid", "admin@letme.com"))

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 401, httpErr.Code)
		assert.False(t, called)
	})

	t.Run("should fail closed when enrollment cannot be persisted", func(t *testing.T) {
		adminUserRepository := mocks.NewAdminUserRepository(t)

		adminUserRepository.On("FindByID", userID).Return(models.AdminUser{}, gorm.ErrRecordNotFound)
		adminUserRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("connection refused"))

		ctx := newContext()
		core.SetSession(ctx, auth.NewSession(userID.String(), "admin@letme.com"))

		called := false
		err := auth.AdminEnrollmentMiddleware(adminUserRepository)(nextSpy(&called))(ctx)

		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 500, httpErr.Code)
		assert.False(t, called)
	})
}
