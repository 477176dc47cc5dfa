// Package dao contains the status-check data access object.
package dao

import (
	mongoLib "go.mongodb.org/mongo-driver/mongo"

	"github.com/Laisky/devhub-api/library/db/mongo"
)

const colStatusChecks = "status_checks"

// General dao type
type General struct {
	db mongo.DB
}

// New create new dao
func New(db mongo.DB) *General {
	return &General{db: db}
}

// GetStatusChecksCol get status checks collection
func (d *General) GetStatusChecksCol() *mongoLib.Collection {
	return d.db.GetCol(colStatusChecks)
}
