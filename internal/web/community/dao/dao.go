// Package dao contains the community data access object.
package dao

import (
	mongoLib "go.mongodb.org/mongo-driver/mongo"

	"github.com/Laisky/devhub-api/library/db/mongo"
)

const (
	colChannels = "channels"
	colMessages = "messages"
)

// Community dao type
type Community struct {
	db mongo.DB
}

// New create new dao
func New(db mongo.DB) *Community {
	return &Community{db: db}
}

// GetChannelsCol get channels collection
func (d *Community) GetChannelsCol() *mongoLib.Collection {
	return d.db.GetCol(colChannels)
}

// GetMessagesCol get messages collection
func (d *Community) GetMessagesCol() *mongoLib.Collection {
	return d.db.GetCol(colMessages)
}
