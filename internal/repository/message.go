package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/model"
)

const messagesCollection = "messages"

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Listen(ctx context.Context, fn func(model.Message)) error
}

type Message struct {
	client *firestore.Client
}

func NewMessageRepository(client *firestore.Client) MessageRepository {
	return &Message{client: client}
}

// Create appends the message with an auto-generated id. The zero Timestamp
// is replaced by the store's server timestamp on write.
func (m *Message) Create(ctx context.Context, message *model.Message) error {
	_, _, err := m.client.Collection(messagesCollection).Add(ctx, message)
	return err
}

// Listen invokes fn once per document added to the collection, in the order
// the store reports them, until ctx is done or the snapshot stream fails.
// Reconnect semantics belong to the client library; failures are returned
// as-is.
func (m *Message) Listen(ctx context.Context, fn func(model.Message)) error {
	iter := m.client.Collection(messagesCollection).Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return err
		}

		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}

			var message model.Message
			if err := change.Doc.DataTo(&message); err != nil {
				continue
			}

			fn(message)
		}
	}
}
