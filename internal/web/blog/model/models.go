// Package model holds the blog documents.
package model

import (
	"time"
)

// Blog is one blog post document. The uuid id doubles as the mongo `_id`.
type Blog struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Title     string    `bson:"title" json:"title"`
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Tags      []string  `bson:"tags" json:"tags"`
	Author    string    `bson:"author" json:"author"`
	Date      time.Time `bson:"date" json:"date"`
}
