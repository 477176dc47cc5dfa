// Package dto defines the request payloads of the community endpoints.
package dto

import (
	"github.com/Laisky/devhub-api/library/rest"
)

// NewChannel is the channel creation payload.
type NewChannel struct {
	Name string `json:"name" binding:"required"`
}

// NewMessage is the message creation payload. Channel is a plain lookup
// key, not validated against the channels collection.
type NewMessage struct {
	Channel string `json:"channel" binding:"required"`
	Author  string `json:"author" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

// ListMessagesQuery carries the message listing filters.
type ListMessagesQuery struct {
	rest.Pagination
	Channel string `form:"channel"`
}
