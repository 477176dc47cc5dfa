// Package model holds the tools-directory documents.
package model

import (
	"time"
)

// Tool is one directory entry. Category is a free-form string and is
// compared case-sensitively when filtering.
type Tool struct {
	ID          string    `bson:"_id" json:"id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	URL         string    `bson:"url" json:"url"`
	Tags        []string  `bson:"tags" json:"tags"`
}
