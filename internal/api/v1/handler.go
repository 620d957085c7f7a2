package v1

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/api/validator"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/config"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/constants"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/metrics"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger         *zap.Logger
	userService    service.UserService
	webhookService service.WebhookService
	validator      *validator.XValidator
	metrics        *metrics.Metrics
	secretToken    string
}

func NewHandler(logger *zap.Logger, userService service.UserService, webhookService service.WebhookService,
	xValidator *validator.XValidator, m *metrics.Metrics, cfg *config.Config) *Handler {
	return &Handler{
		logger:         logger,
		userService:    userService,
		webhookService: webhookService,
		validator:      xValidator,
		metrics:        m,
		secretToken:    cfg.Webhook.SecretToken,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var request CreateUserRequest
	if err := decodeStrict(c.Body(), &request); err != nil {
		h.logger.Warn("Failed to parse create user body", zap.Error(err))
		return invalidBody(c)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return h.validationFailed(c, "create user", errs)
	}

	user, err := h.userService.CreateUser(c.UserContext(), service.CreateUserCommand{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	})
	if err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.RecordUserCreated()
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	query := service.ListUsersQuery{Cursor: c.Query("cursor")}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			h.logger.Warn("Invalid list limit", zap.String("limit", raw))
			return invalidBody(c)
		}
		query.Limit = limit
	}

	users, err := h.userService.ListUsers(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.JSON(toUserResponses(users))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var request UpdateUserRequest
	if err := decodeStrict(c.Body(), &request); err != nil {
		h.logger.Warn("Failed to parse update user body", zap.Error(err))
		return invalidBody(c)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return h.validationFailed(c, "update user", errs)
	}

	user, err := h.userService.UpdateUser(c.UserContext(), service.UpdateUserCommand{
		ID:    c.Params("id"),
		Name:  request.Name,
		Phone: request.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}

// Webhook runs its steps strictly in order: authenticate, validate payload,
// rate-limit, persist, reply. A failed step stops the chain, so the message
// is never stored on 401/400/429.
func (h *Handler) Webhook(c *fiber.Ctx) error {
	expected := "Bearer " + h.secretToken
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) != len(expected) || subtle.ConstantTimeCompare([]byte(auth), []byte(expected)) != 1 {
		h.logger.Warn("Webhook authentication failed")
		if h.metrics != nil {
			h.metrics.RecordWebhookAuthFailure()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    constants.ErrCodeUnauthorized,
			"message": constants.GetErrorMessage(constants.ErrCodeUnauthorized),
		})
	}

	var request WebhookRequest
	if err := json.Unmarshal(c.Body(), &request); err != nil {
		h.logger.Warn("Failed to parse webhook body", zap.Error(err))
		return invalidBody(c)
	}

	if request.Message == "" || request.Phone == "" {
		h.logger.Warn("Webhook payload missing message or phone")
		return invalidBody(c)
	}

	result, err := h.webhookService.HandleInbound(c.UserContext(), service.InboundMessageCommand{
		Phone: request.Phone,
		Text:  request.Message,
	})
	if err != nil {
		var serviceErr service.Error
		if h.metrics != nil && errors.As(err, &serviceErr) && serviceErr.Code == constants.ErrCodeRateLimited {
			h.metrics.RecordRateLimitDenial()
		}
		return err
	}

	if h.metrics != nil {
		h.metrics.RecordMessageStored()
	}

	if result.Reply != "" {
		return c.JSON(WebhookReplyResponse{Reply: result.Reply})
	}

	return c.JSON(WebhookSuccessResponse{Success: result.Success})
}

func (h *Handler) validationFailed(c *fiber.Ctx, operation string, errs []validator.Error) error {
	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", err.FailedField, err.Tag))
	}

	h.logger.Warn("Request validation failed",
		zap.String("operation", operation),
		zap.Strings("fields", fields),
	)

	if h.metrics != nil {
		h.metrics.RecordValidationError(operation)
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeValidationFailed,
		"message": strings.Join(fields, " and "),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}

// decodeStrict rejects unknown body fields, the explicit stand-in for a
// whitelisting validation pipe.
func decodeStrict(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
