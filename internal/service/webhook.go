package service

import (
	"context"
	"strings"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/constants"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/ratelimit"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/repository"
	"go.uber.org/zap"
)

const supportReply = "Support contact: support@company.com"

type WebhookService interface {
	HandleInbound(ctx context.Context, cmd InboundMessageCommand) (InboundMessageResult, error)
	SubscribeMessages(ctx context.Context, fn func(model.Message)) error
}

type webhook struct {
	messageRepo repository.MessageRepository
	limiter     ratelimit.Limiter
	logger      *zap.Logger
}

func NewWebhookService(messageRepo repository.MessageRepository, limiter ratelimit.Limiter,
	logger *zap.Logger) WebhookService {
	return &webhook{messageRepo: messageRepo, limiter: limiter, logger: logger}
}

// HandleInbound rate-limits by phone, persists the message, and picks the
// reply. The message is never stored when the limiter denies.
func (w *webhook) HandleInbound(ctx context.Context, cmd InboundMessageCommand) (InboundMessageResult, error) {
	if !w.limiter.Allow(cmd.Phone) {
		w.logger.Warn("Inbound message rate limited", zap.String("phone", cmd.Phone))
		return InboundMessageResult{}, NewServiceError(constants.ErrCodeRateLimited, ErrRateLimited)
	}

	message := model.Message{Phone: cmd.Phone, Body: cmd.Text}
	if err := w.messageRepo.Create(ctx, &message); err != nil {
		w.logger.Error("Failed to store inbound message",
			zap.Error(err),
			zap.String("phone", cmd.Phone),
		)
		return InboundMessageResult{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	w.logger.Info("Inbound message stored", zap.String("phone", cmd.Phone))

	if strings.Contains(strings.ToLower(cmd.Text), "help") {
		return InboundMessageResult{Reply: supportReply}, nil
	}

	return InboundMessageResult{Success: true}, nil
}

// SubscribeMessages streams newly stored messages to fn. Not mounted on any
// route; exposed for future consumers.
func (w *webhook) SubscribeMessages(ctx context.Context, fn func(model.Message)) error {
	return w.messageRepo.Listen(ctx, fn)
}
