package models

import "time"

// DemoRequest is the persisted lead record for a demo booking or link
// request. Records are append-only; a failed write never blocks the email
// flow.
type DemoRequest struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Company      *string   `bson:"company" json:"company"`             // nil when not provided
	Source       string    `bson:"source" json:"source"`               // originating UI surface
	SelectedTime *string   `bson:"selected_time" json:"selected_time"` // nil for link requests
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	Status       string    `bson:"status" json:"status"` // always "pending" at creation
}
