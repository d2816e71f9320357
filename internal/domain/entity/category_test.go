package entity

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryParentIDAlwaysStored(t *testing.T) {
	// Root categories are found with an equality filter on parentId == "".
	// If the field were omitted on write, that filter would match nothing,
	// so the store tag must not carry omitempty.
	field, ok := reflect.TypeOf(Category{}).FieldByName("ParentID")
	require.True(t, ok)

	tag := field.Tag.Get("firestore")
	assert.Equal(t, "parentId", tag)
	assert.False(t, strings.Contains(tag, "omitempty"))
}
