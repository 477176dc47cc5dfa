// Package model holds the status-check documents.
package model

import (
	"time"
)

// StatusCheck is one client health ping. Unlike the other collections it
// carries a single timestamp instead of the created/updated pair.
type StatusCheck struct {
	ID         string    `bson:"_id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
