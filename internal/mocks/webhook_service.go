package mocks

import (
	"context"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/stretchr/testify/mock"
)

type WebhookService struct {
	mock.Mock
}

func (m *WebhookService) HandleInbound(ctx context.Context, cmd service.InboundMessageCommand) (service.InboundMessageResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.InboundMessageResult), args.Error(1)
}

func (m *WebhookService) SubscribeMessages(ctx context.Context, fn func(model.Message)) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
