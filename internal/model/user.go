package model

import "time"

// User is a document in the "users" collection. The Firestore document id
// is duplicated into the id field so reads return it without touching
// snapshot metadata.
type User struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Phone     string    `firestore:"phone" json:"phone"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
