package dextrade

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRequestID_Unique(t *testing.T) {
	const n = 1000
	ids := make(chan string, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ids <- nextRequestID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate request_id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestNextRequestID_TimestampPrefix(t *testing.T) {
	id := nextRequestID()

	// Microsecond epoch timestamps are 16 digits until the year 2286; the
	// counter and entropy suffix follow.
	require.Greater(t, len(id), 16)
	micros, err := strconv.ParseInt(id[:16], 10, 64)
	require.NoError(t, err)
	assert.Positive(t, micros)
}
