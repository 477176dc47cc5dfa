// Package model holds the learning-path documents.
package model

import (
	"time"
)

// Step is one learning-path step, ordered by creation time.
// The durationMin json name follows the public API contract.
type Step struct {
	ID          string    `bson:"_id" json:"id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	Label       string    `bson:"label" json:"label"`
	DurationMin int       `bson:"durationMin" json:"durationMin"`
}
