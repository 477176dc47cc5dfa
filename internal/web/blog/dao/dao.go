// Package dao contains the blog data access object.
package dao

import (
	mongoLib "go.mongodb.org/mongo-driver/mongo"

	"github.com/Laisky/devhub-api/library/db/mongo"
)

const colBlogs = "blogs"

// Blog dao type
type Blog struct {
	db mongo.DB
}

// New create new dao
func New(db mongo.DB) *Blog {
	return &Blog{db: db}
}

// GetBlogsCol get blogs collection
func (d *Blog) GetBlogsCol() *mongoLib.Collection {
	return d.db.GetCol(colBlogs)
}
