// Package dto defines the request payloads of the blog endpoints.
package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Laisky/devhub-api/library/rest"
)

// NewBlog is the creation payload, server-assigned fields omitted.
type NewBlog struct {
	Title   string     `json:"title" binding:"required"`
	Excerpt string     `json:"excerpt" binding:"required"`
	Tags    []string   `json:"tags"`
	Author  string     `json:"author" binding:"required"`
	Date    *time.Time `json:"date"`
}

// BlogPatch is a partial update. Nil means the field was not provided
// and must stay untouched; this is distinct from an explicit empty value.
type BlogPatch struct {
	Title   *string    `json:"title"`
	Excerpt *string    `json:"excerpt"`
	Tags    *[]string  `json:"tags"`
	Author  *string    `json:"author"`
	Date    *time.Time `json:"date"`
}

// Fields returns the $set document built from the provided fields only.
func (p BlogPatch) Fields() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Excerpt != nil {
		set["excerpt"] = *p.Excerpt
	}
	if p.Tags != nil {
		set["tags"] = *p.Tags
	}
	if p.Author != nil {
		set["author"] = *p.Author
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	return set
}

// ListBlogsQuery carries the list endpoint filters.
type ListBlogsQuery struct {
	rest.Pagination
	Search string `form:"search"`
	Tags   string `form:"tags"`
}
