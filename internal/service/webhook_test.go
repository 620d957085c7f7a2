package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/constants"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/mocks"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestWebhook_HandleInbound(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.InboundMessageCommand{
		Phone: "+1234567890",
		Text:  "Hello",
	}

	t.Run("stores the message and acknowledges", func(t *testing.T) {
		mockMessageRepo := &mocks.MessageRepository{}
		mockLimiter := &mocks.Limiter{}
		svc := service.NewWebhookService(mockMessageRepo, mockLimiter, logger)

		mockLimiter.On("Allow", cmd.Phone).Return(true)
		mockMessageRepo.On("Create", context.Background(),
			mock.MatchedBy(func(message *model.Message) bool {
				return message.Phone == cmd.Phone &&
					message.Body == cmd.Text &&
					message.Timestamp.IsZero()
			})).Return(nil)

		result, err := svc.HandleInbound(context.Background(), cmd)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Empty(t, result.Reply)

		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("replies with support contact for help messages", func(t *testing.T) {
		mockMessageRepo := &mocks.MessageRepository{}
		mockLimiter := &mocks.Limiter{}
		svc := service.NewWebhookService(mockMessageRepo, mockLimiter, logger)

		mockLimiter.On("Allow", cmd.Phone).Return(true)
		mockMessageRepo.On("Create", context.Background(), mock.AnythingOfType("*model.Message")).Return(nil)

		result, err := svc.HandleInbound(context.Background(), service.InboundMessageCommand{
			Phone: cmd.Phone,
			Text:  "HELP me please",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Support contact: support@company.com", result.Reply)
		assert.False(t, result.Success)
	})

	t.Run("denies rate limited phones before storing", func(t *testing.T) {
		mockMessageRepo := &mocks.MessageRepository{}
		mockLimiter := &mocks.Limiter{}
		svc := service.NewWebhookService(mockMessageRepo, mockLimiter, logger)

		mockLimiter.On("Allow", cmd.Phone).Return(false)

		_, err := svc.HandleInbound(context.Background(), cmd)

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeRateLimited, serviceErr.Code)

		mockMessageRepo.AssertNotCalled(t, "Create")
	})

	t.Run("propagates store failure as internal error", func(t *testing.T) {
		mockMessageRepo := &mocks.MessageRepository{}
		mockLimiter := &mocks.Limiter{}
		svc := service.NewWebhookService(mockMessageRepo, mockLimiter, logger)

		mockLimiter.On("Allow", cmd.Phone).Return(true)
		mockMessageRepo.On("Create", context.Background(), mock.AnythingOfType("*model.Message")).
			Return(errors.New("deadline exceeded"))

		_, err := svc.HandleInbound(context.Background(), cmd)

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeDatabase, serviceErr.Code)
	})
}

func TestWebhook_SubscribeMessages(t *testing.T) {
	logger := zap.NewNop()

	t.Run("delegates to the message listener", func(t *testing.T) {
		mockMessageRepo := &mocks.MessageRepository{}
		mockLimiter := &mocks.Limiter{}
		svc := service.NewWebhookService(mockMessageRepo, mockLimiter, logger)

		mockMessageRepo.On("Listen", context.Background(), mock.AnythingOfType("func(model.Message)")).
			Return(nil)

		err := svc.SubscribeMessages(context.Background(), func(model.Message) {})

		assert.NoError(t, err)
		mockMessageRepo.AssertExpectations(t)
	})
}
