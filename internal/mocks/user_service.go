package mocks

import (
	"context"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/stretchr/testify/mock"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) CreateUser(ctx context.Context, cmd service.CreateUserCommand) (model.User, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) ListUsers(ctx context.Context, query service.ListUsersQuery) ([]model.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserService) GetUser(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, cmd service.UpdateUserCommand) (model.User, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.User), args.Error(1)
}
