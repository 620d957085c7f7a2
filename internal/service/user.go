package service

import (
	"context"
	"errors"
	"time"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/constants"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/repository"
	"go.uber.org/zap"
)

const defaultListLimit = 10

type UserService interface {
	CreateUser(ctx context.Context, cmd CreateUserCommand) (model.User, error)
	ListUsers(ctx context.Context, query ListUsersQuery) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	UpdateUser(ctx context.Context, cmd UpdateUserCommand) (model.User, error)
}

type user struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &user{userRepo: userRepo, logger: logger}
}

// CreateUser rejects emails that already exist. The existence check and the
// write are separate store calls; concurrent creates with the same email
// can both pass the check.
func (u *user) CreateUser(ctx context.Context, cmd CreateUserCommand) (model.User, error) {
	_, err := u.userRepo.FindByEmail(ctx, cmd.Email)
	if err == nil {
		u.logger.Warn("Duplicate user detected", zap.String("email", cmd.Email))
		return model.User{}, NewServiceError(constants.ErrCodeDuplicateUser, ErrDuplicateEmail)
	}

	if !errors.Is(err, repository.ErrUserNotFound) {
		u.logger.Error("Failed to check for existing user", zap.Error(err))
		return model.User{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	now := time.Now()
	record := model.User{
		Name:      cmd.Name,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, &record); err != nil {
		u.logger.Error("Failed to create user", zap.Error(err), zap.String("email", cmd.Email))
		return model.User{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	u.logger.Info("User created",
		zap.String("userID", record.ID),
		zap.String("email", record.Email),
	)

	return record, nil
}

func (u *user) ListUsers(ctx context.Context, query ListUsersQuery) ([]model.User, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	users, err := u.userRepo.List(ctx, limit, query.Cursor)
	if err != nil {
		if errors.Is(err, repository.ErrCursorNotFound) {
			u.logger.Warn("List cursor not found", zap.String("cursor", query.Cursor))
			return nil, NewServiceError(constants.ErrCodeCursorNotFound, ErrCursorNotFound)
		}

		u.logger.Error("Failed to list users", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return users, nil
}

func (u *user) GetUser(ctx context.Context, id string) (model.User, error) {
	record, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, ErrUserNotFound)
		}

		u.logger.Error("Failed to get user", zap.Error(err), zap.String("userID", id))
		return model.User{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return *record, nil
}

// UpdateUser merges the provided fields into the record read before the
// write and returns that merged view without re-fetching.
func (u *user) UpdateUser(ctx context.Context, cmd UpdateUserCommand) (model.User, error) {
	record, err := u.userRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, ErrUserNotFound)
		}

		u.logger.Error("Failed to read user before update", zap.Error(err), zap.String("userID", cmd.ID))
		return model.User{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	fields := map[string]interface{}{"updatedAt": time.Now()}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
		record.Name = *cmd.Name
	}
	if cmd.Phone != nil {
		fields["phone"] = *cmd.Phone
		record.Phone = *cmd.Phone
	}
	record.UpdatedAt = fields["updatedAt"].(time.Time)

	if err := u.userRepo.Update(ctx, cmd.ID, fields); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, ErrUserNotFound)
		}

		u.logger.Error("Failed to update user", zap.Error(err), zap.String("userID", cmd.ID))
		return model.User{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	u.logger.Info("User updated", zap.String("userID", cmd.ID))

	return *record, nil
}
