package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New(true)
	payload := []byte(`{"rating":1500}`)

	etag := c.Set("rating:codeforces:tourist:1", payload, time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get("rating:codeforces:tourist:1")
	require.True(t, ok)
	assert.Equal(t, payload, data)
	assert.Equal(t, etag, gotETag)
}

func TestGetMissing(t *testing.T) {
	c := New(true)
	_, _, ok := c.Get("rating:codeforces:nobody:1")
	assert.False(t, ok)
}

func TestGetExpired(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDisabledCache(t *testing.T) {
	c := New(false)

	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag, "disabled cache still computes the ETag")

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestEvict(t *testing.T) {
	c := New(true)
	c.Set("live", []byte("a"), time.Minute)
	c.Set("dead", []byte("b"), -time.Second)

	c.evict()

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["active_keys"])
}

func TestBucket(t *testing.T) {
	base := time.Unix(1700000000, 0)
	width := 5 * time.Minute

	b := Bucket(base, width)
	assert.Equal(t, b, Bucket(base.Add(time.Second), width))

	// The boundary is aligned to the epoch, not to the first lookup.
	next := time.Unix((1700000000/300+1)*300, 0)
	assert.Equal(t, b+1, Bucket(next, width))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "rating:leetcode:alice:5666666", Key("leetcode", "alice", 5666666))
}

func TestComputeETag(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	assert.Equal(t, a, ComputeETag([]byte("payload")))
	assert.NotEqual(t, a, ComputeETag([]byte("other")))
	assert.Contains(t, a, `W/"`)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"deadbeef"`, etag))
}
