package ulid

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID_IsUniqueAndSortable(t *testing.T) {
	t.Parallel()

	before := time.Now().Add(-time.Second)
	first := NewRunID()
	second := NewRunID()

	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second)

	id, err := ulid.ParseStrict(first)
	require.NoError(t, err)
	assert.True(t, ulid.Time(id.Time()).After(before))
}
