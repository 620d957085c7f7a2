package model

import "time"

// Message is a document in the "messages" collection. Append-only; the
// timestamp is assigned by the store on write.
type Message struct {
	Phone     string    `firestore:"phone" json:"phone"`
	Body      string    `firestore:"message" json:"message"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
