package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// TestNewStepBinding verifies durationMin must be present but may be zero.
func TestNewStepBinding(t *testing.T) {
	t.Parallel()

	var req NewStep
	err := binding.JSON.BindBody([]byte(`{"label":"Rest day","durationMin":0}`), &req)
	require.NoError(t, err)
	require.NotNil(t, req.DurationMin)
	require.Equal(t, 0, *req.DurationMin)

	req = NewStep{}
	err = binding.JSON.BindBody([]byte(`{"label":"Rest day"}`), &req)
	require.ErrorContains(t, err, "DurationMin")

	req = NewStep{}
	err = binding.JSON.BindBody([]byte(`{"durationMin":30}`), &req)
	require.ErrorContains(t, err, "Label")
}

// TestStepPatchFields verifies only provided fields enter the $set document.
func TestStepPatchFields(t *testing.T) {
	t.Parallel()

	require.Empty(t, StepPatch{}.Fields())

	label := "Generics"
	require.Equal(t, bson.M{"label": "Generics"}, StepPatch{Label: &label}.Fields())

	duration := 0
	set := StepPatch{DurationMin: &duration}.Fields()
	require.Equal(t, bson.M{"durationMin": 0}, set)
}
