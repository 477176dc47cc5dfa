package service

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Laisky/devhub-api/library/rest"
)

// TestMakeFilter verifies category filtering and the `all` escape value.
func TestMakeFilter(t *testing.T) {
	t.Parallel()

	require.Empty(t, makeFilter(""))
	require.Empty(t, makeFilter("all"))
	require.Empty(t, makeFilter("ALL"))
	require.Empty(t, makeFilter("All"))

	filter := makeFilter("dev")
	require.Equal(t, bson.D{{Key: "category", Value: "dev"}}, filter)

	// category comparison stays case-sensitive
	filter = makeFilter("Dev")
	require.Equal(t, bson.D{{Key: "category", Value: "Dev"}}, filter)
}

// TestSortSpec verifies the sort enum is restricted to name/category and
// unknown values fail validation before any store access.
func TestSortSpec(t *testing.T) {
	t.Parallel()

	sort, err := sortSpec("")
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "name", Value: 1}}, sort)

	sort, err = sortSpec("name")
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "name", Value: 1}}, sort)

	sort, err = sortSpec("category")
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "category", Value: 1}}, sort)

	_, err = sortSpec("bogus")
	require.Error(t, err)
	require.True(t, errors.Is(err, rest.ErrValidation))

	// enum values are case-sensitive
	_, err = sortSpec("Name")
	require.Error(t, err)
}
