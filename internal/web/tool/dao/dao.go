// Package dao contains the tools data access object.
package dao

import (
	mongoLib "go.mongodb.org/mongo-driver/mongo"

	"github.com/Laisky/devhub-api/library/db/mongo"
)

const colTools = "tools"

// Tool dao type
type Tool struct {
	db mongo.DB
}

// New create new dao
func New(db mongo.DB) *Tool {
	return &Tool{db: db}
}

// GetToolsCol get tools collection
func (d *Tool) GetToolsCol() *mongoLib.Collection {
	return d.db.GetCol(colTools)
}
