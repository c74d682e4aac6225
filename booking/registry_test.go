package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOwnership(t *testing.T) {
	r := NewRegistry()
	w := New(1)
	r.Put(w)

	require.NotNil(t, r.Get(w.ID, 1))
	assert.Nil(t, r.Get(w.ID, 2), "không được chạm phiên của người khác")
	assert.Nil(t, r.Get("missing", 1))
}

func TestReapIdleDropsClosedAndStale(t *testing.T) {
	r := NewRegistry()

	closed := New(1)
	closed.Close()
	r.Put(closed)

	stale := New(1)
	stale.UpdatedAt = time.Now().Add(-time.Hour)
	r.Put(stale)

	fresh := New(1)
	r.Put(fresh)

	n := r.ReapIdle(30 * time.Minute)
	assert.Equal(t, 2, n)
	assert.Nil(t, r.Get(closed.ID, 1))
	assert.Nil(t, r.Get(stale.ID, 1))
	assert.NotNil(t, r.Get(fresh.ID, 1))
}
