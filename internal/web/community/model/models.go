// Package model holds the community documents.
package model

import (
	"time"
)

// Channel is an append-only registry entry. Names are unique in practice
// but no constraint enforces it.
type Channel struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Name      string    `bson:"name" json:"name"`
}

// Message references its channel by name. The reference is weak: a message
// may outlive the channel it points at.
type Message struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Channel   string    `bson:"channel" json:"channel"`
	Author    string    `bson:"author" json:"author"`
	Text      string    `bson:"text" json:"text"`
	Ts        time.Time `bson:"ts" json:"ts"`
}
