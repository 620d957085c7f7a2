package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")
var ErrCursorNotFound = errors.New("CURSOR_NOT_FOUND")

const usersCollection = "users"

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context, limit int, cursor string) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type User struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) UserRepository {
	return &User{client: client}
}

func (u *User) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	iter := u.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Create assigns a fresh document id and writes the full record. The caller
// is expected to have checked for duplicates first; the check and this
// write are two independent store calls, so concurrent creates with the
// same email can both land.
func (u *User) Create(ctx context.Context, user *model.User) error {
	ref := u.client.Collection(usersCollection).NewDoc()
	user.ID = ref.ID

	_, err := ref.Set(ctx, user)
	return err
}

func (u *User) List(ctx context.Context, limit int, cursor string) ([]model.User, error) {
	query := u.client.Collection(usersCollection).
		OrderBy("createdAt", firestore.Asc).
		Limit(limit)

	if cursor != "" {
		snap, err := u.client.Collection(usersCollection).Doc(cursor).Get(ctx)
		if status.Code(err) == codes.NotFound {
			return nil, ErrCursorNotFound
		}
		if err != nil {
			return nil, err
		}

		query = query.StartAfter(snap)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	users := make([]model.User, 0, limit)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, nil
}

func (u *User) GetByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := u.client.Collection(usersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := u.client.Collection(usersCollection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrUserNotFound
	}

	return err
}
