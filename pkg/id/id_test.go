package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSorted(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		assert.Len(t, next, 26)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestNewAtTime(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	got, err := Time(NewAt(ts))
	require.NoError(t, err)
	assert.True(t, got.Equal(ts))
}

func TestTimeInvalid(t *testing.T) {
	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}
