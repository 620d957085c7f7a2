package mocks

import (
	"context"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) Listen(ctx context.Context, fn func(model.Message)) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
