package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	return NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestClient_GetSetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type entry struct {
		Title string `json:"title"`
	}

	var out []entry
	hit, err := c.GetJSON(ctx, "projects:list", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	in := []entry{{Title: "Villa"}, {Title: "Ofis"}}
	require.NoError(t, c.SetJSON(ctx, "projects:list", in, ListTTL))

	hit, err = c.GetJSON(ctx, "projects:list", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestClient_GetJSONDropsCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("projects:list", "{not json"))

	var out []string
	hit, err := c.GetJSON(ctx, "projects:list", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, mr.Exists("projects:list"))
}

func TestClient_InvalidatePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "projects:list:any::0", []byte("a"), ListTTL))
	require.NoError(t, c.Set(ctx, "projects:list:true::3", []byte("b"), ListTTL))
	require.NoError(t, c.Set(ctx, "services:list:any:0", []byte("c"), ListTTL))

	require.NoError(t, c.InvalidatePrefix(ctx, "projects:"))

	assert.False(t, mr.Exists("projects:list:any::0"))
	assert.False(t, mr.Exists("projects:list:true::3"))
	assert.True(t, mr.Exists("services:list:any:0"))
}

func TestClient_SetAppliesTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "projects:list", []byte("a"), time.Minute))

	mr.FastForward(2 * time.Minute)

	data, err := c.Get(ctx, "projects:list")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClient_NilClientIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.InvalidatePrefix(ctx, "k"))

	var out string
	hit, err := c.GetJSON(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.SetJSON(ctx, "k", "v", time.Minute))
}

func TestClient_UnreachableRedisBehavesLikeMiss(t *testing.T) {
	c := NewFromRedis(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
}
