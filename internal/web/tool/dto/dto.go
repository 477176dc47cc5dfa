// Package dto defines the request payloads of the tools endpoints.
package dto

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Laisky/devhub-api/library/rest"
)

// NewTool is the creation payload, server-assigned fields omitted.
type NewTool struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	URL         string   `json:"url" binding:"required"`
	Tags        []string `json:"tags"`
}

// ToolPatch is a partial update, nil fields are left untouched.
type ToolPatch struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	Tags        *[]string `json:"tags"`
}

// Fields returns the $set document built from the provided fields only.
func (p ToolPatch) Fields() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.URL != nil {
		set["url"] = *p.URL
	}
	if p.Tags != nil {
		set["tags"] = *p.Tags
	}
	return set
}

// ListToolsQuery carries the list endpoint filters.
type ListToolsQuery struct {
	rest.Pagination
	Category string `form:"category"`
	Sort     string `form:"sort"`
}
