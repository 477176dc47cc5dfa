// Package dao contains the learning-path data access object.
package dao

import (
	mongoLib "go.mongodb.org/mongo-driver/mongo"

	"github.com/Laisky/devhub-api/library/db/mongo"
)

const colPath = "path"

// Path dao type
type Path struct {
	db mongo.DB
}

// New create new dao
func New(db mongo.DB) *Path {
	return &Path{db: db}
}

// GetPathCol get path collection
func (d *Path) GetPathCol() *mongoLib.Collection {
	return d.db.GetCol(colPath)
}
