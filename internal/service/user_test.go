package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/constants"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/mocks"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/repository"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUser_CreateUser(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.CreateUserCommand{
		Name:  "Jane Farmer",
		Email: "jane@example.com",
		Phone: "+1234567890",
	}

	t.Run("creates user with fresh email", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		mockUserRepo.On("FindByEmail", context.Background(), cmd.Email).
			Return(nil, repository.ErrUserNotFound)

		mockUserRepo.On("Create", context.Background(),
			mock.MatchedBy(func(user *model.User) bool {
				return user.Name == cmd.Name &&
					user.Email == cmd.Email &&
					user.Phone == cmd.Phone &&
					!user.CreatedAt.IsZero() &&
					user.CreatedAt.Equal(user.UpdatedAt)
			})).Run(func(args mock.Arguments) {
			user := args.Get(1).(*model.User)
			user.ID = "generated-id-123"
		}).Return(nil)

		user, err := svc.CreateUser(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, "generated-id-123", user.ID)
		assert.Equal(t, cmd.Email, user.Email)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email with conflict", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		existing := &model.User{ID: "existing", Email: cmd.Email}
		mockUserRepo.On("FindByEmail", context.Background(), cmd.Email).Return(existing, nil)

		_, err := svc.CreateUser(context.Background(), cmd)

		assert.Error(t, err)
		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeDuplicateUser, serviceErr.Code)

		mockUserRepo.AssertNotCalled(t, "Create")
	})

	t.Run("wraps store failure during dedup check", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		mockUserRepo.On("FindByEmail", context.Background(), cmd.Email).
			Return(nil, errors.New("rpc unavailable"))

		_, err := svc.CreateUser(context.Background(), cmd)

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeDatabase, serviceErr.Code)

		mockUserRepo.AssertNotCalled(t, "Create")
	})
}

func TestUser_ListUsers(t *testing.T) {
	logger := zap.NewNop()

	t.Run("defaults the limit to 10", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		mockUserRepo.On("List", context.Background(), 10, "").Return([]model.User{}, nil)

		_, err := svc.ListUsers(context.Background(), service.ListUsersQuery{})

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("passes limit and cursor through", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		expected := []model.User{{ID: "a"}, {ID: "b"}}
		mockUserRepo.On("List", context.Background(), 2, "cursor-id").Return(expected, nil)

		users, err := svc.ListUsers(context.Background(), service.ListUsersQuery{Limit: 2, Cursor: "cursor-id"})

		assert.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("maps unknown cursor to not found", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		mockUserRepo.On("List", context.Background(), 10, "missing").
			Return(nil, repository.ErrCursorNotFound)

		_, err := svc.ListUsers(context.Background(), service.ListUsersQuery{Cursor: "missing"})

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeCursorNotFound, serviceErr.Code)
	})
}

func TestUser_GetUser(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns the stored record", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		record := &model.User{ID: "user-1", Name: "Jane"}
		mockUserRepo.On("GetByID", context.Background(), "user-1").Return(record, nil)

		user, err := svc.GetUser(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, *record, user)
	})

	t.Run("maps missing record to not found", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		mockUserRepo.On("GetByID", context.Background(), "missing").
			Return(nil, repository.ErrUserNotFound)

		_, err := svc.GetUser(context.Background(), "missing")

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErr.Code)
	})
}

func TestUser_UpdateUser(t *testing.T) {
	logger := zap.NewNop()

	stored := model.User{
		ID:        "user-1",
		Name:      "Jane Farmer",
		Email:     "jane@example.com",
		Phone:     "+1234567890",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	t.Run("merges only the provided fields", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		record := stored
		mockUserRepo.On("GetByID", context.Background(), "user-1").Return(&record, nil)

		mockUserRepo.On("Update", context.Background(), "user-1",
			mock.MatchedBy(func(fields map[string]interface{}) bool {
				_, hasName := fields["name"]
				_, hasPhone := fields["phone"]
				_, hasUpdatedAt := fields["updatedAt"]
				return hasName && hasUpdatedAt && !hasPhone && len(fields) == 2
			})).Return(nil)

		name := "Janet Farmer"
		user, err := svc.UpdateUser(context.Background(), service.UpdateUserCommand{
			ID:   "user-1",
			Name: &name,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Janet Farmer", user.Name)
		assert.Equal(t, stored.Phone, user.Phone, "phone must be unchanged")
		assert.True(t, user.UpdatedAt.After(stored.UpdatedAt))
		assert.Equal(t, stored.CreatedAt, user.CreatedAt)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("maps missing record to not found", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewUserService(mockUserRepo, logger)

		mockUserRepo.On("GetByID", context.Background(), "missing").
			Return(nil, repository.ErrUserNotFound)

		name := "anyone"
		_, err := svc.UpdateUser(context.Background(), service.UpdateUserCommand{ID: "missing", Name: &name})

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErr.Code)

		mockUserRepo.AssertNotCalled(t, "Update")
	})
}
