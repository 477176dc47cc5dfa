// Package dto defines the request payloads of the learning-path endpoints.
package dto

import (
	"go.mongodb.org/mongo-driver/bson"
)

// NewStep is the creation payload, server-assigned fields omitted.
// DurationMin is a pointer so the required check demands presence
// while still admitting a zero-minute step.
type NewStep struct {
	Label       string `json:"label" binding:"required"`
	DurationMin *int   `json:"durationMin" binding:"required"`
}

// StepPatch is a partial update, nil fields are left untouched.
type StepPatch struct {
	Label       *string `json:"label"`
	DurationMin *int    `json:"durationMin"`
}

// Fields returns the $set document built from the provided fields only.
func (p StepPatch) Fields() bson.M {
	set := bson.M{}
	if p.Label != nil {
		set["label"] = *p.Label
	}
	if p.DurationMin != nil {
		set["durationMin"] = *p.DurationMin
	}
	return set
}
