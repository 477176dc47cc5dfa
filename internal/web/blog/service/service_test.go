package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestSplitTags verifies comma-separated tags are split and cleaned.
func TestSplitTags(t *testing.T) {
	t.Parallel()

	require.Nil(t, splitTags(""))
	require.Nil(t, splitTags(" , ,"))
	require.Equal(t, []string{"go"}, splitTags("go"))
	require.Equal(t, []string{"go", "web"}, splitTags(" go, web "))
}

// TestMakeFilterEmpty verifies no filter is produced without parameters.
func TestMakeFilterEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, makeFilter("", ""))
}

// TestMakeFilterSearch verifies the OR-combined substring match over
// title, excerpt and tags, with regex metacharacters escaped.
func TestMakeFilterSearch(t *testing.T) {
	t.Parallel()

	filter := makeFilter("c++ tips", "")
	require.Len(t, filter, 1)
	require.Equal(t, "$or", filter[0].Key)

	or, ok := filter[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	title, ok := or[0].(bson.M)
	require.True(t, ok)
	re, ok := title["title"].(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, `c\+\+ tips`, re.Pattern)
	require.Equal(t, "i", re.Options)
}

// TestMakeFilterTags verifies tag membership matching.
func TestMakeFilterTags(t *testing.T) {
	t.Parallel()

	filter := makeFilter("", "go,web, infra")
	require.Len(t, filter, 1)
	require.Equal(t, "tags", filter[0].Key)
	require.Equal(t, bson.M{"$in": []string{"go", "web", "infra"}}, filter[0].Value)
}

// TestMakeFilterCombined verifies search and tags compose into one filter.
func TestMakeFilterCombined(t *testing.T) {
	t.Parallel()

	filter := makeFilter("gin", "go")
	require.Len(t, filter, 2)
	require.Equal(t, "$or", filter[0].Key)
	require.Equal(t, "tags", filter[1].Key)
}
