package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRecordsEmpty(t *testing.T) {
	c := NewCollection(NewMemoryStore(), "bookings")

	records, err := c.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records, "a never-written collection reads as empty, not as an error")
}

func TestCollectionAppendAndFind(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryStore(), "bookings")

	require.NoError(t, c.Append(ctx, map[string]any{"id": "b1", "status": "scheduled"}))
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b2", "status": "completed"}))

	records, err := c.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b1", records[0]["id"], "insertion order is preserved")

	found, err := c.Find(ctx, func(r map[string]any) bool { return r["id"] == "b2" })
	require.NoError(t, err)
	assert.Equal(t, "completed", found["status"])

	_, err = c.Find(ctx, func(r map[string]any) bool { return r["id"] == "missing" })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryStore(), "bookings")
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b1", "status": "scheduled", "notes": "keep me"}))

	before := time.Now().UTC().Add(-time.Second)
	updated, err := c.Update(ctx, "b1", map[string]any{"status": "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "keep me", updated["notes"], "untouched fields survive a partial update")

	stamp, ok := updated["updatedAt"].(time.Time)
	require.True(t, ok)
	assert.True(t, stamp.After(before))

	t.Run("missing id", func(t *testing.T) {
		_, err := c.Update(ctx, "nope", map[string]any{"status": "cancelled"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCollectionUpdateIdempotence(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryStore(), "bookings")
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b1", "status": "scheduled", "totalPrice": 5000}))

	fields := map[string]any{"status": "completed", "totalPrice": 6000}
	first, err := c.Update(ctx, "b1", fields)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	second, err := c.Update(ctx, "b1", fields)
	require.NoError(t, err)

	firstStamp, ok := first["updatedAt"].(time.Time)
	require.True(t, ok)
	secondStamp, ok := second["updatedAt"].(time.Time)
	require.True(t, ok)
	assert.True(t, secondStamp.After(firstStamp), "the stamp advances on every update")

	// Apart from updatedAt the stored fields are unchanged by the repeat.
	delete(first, "updatedAt")
	delete(second, "updatedAt")
	assert.Equal(t, first, second)
}

func TestCollectionRemove(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryStore(), "bookings")
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b1"}))
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b2"}))

	require.NoError(t, c.Remove(ctx, "b1"))

	records, err := c.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b2", records[0]["id"])

	assert.ErrorIs(t, c.Remove(ctx, "b1"), ErrNotFound)
}

func TestCollectionFilter(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryStore(), "bookings")
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b1", "date": "2025-07-01"}))
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b2", "date": "2025-07-02"}))
	require.NoError(t, c.Append(ctx, map[string]any{"id": "b3", "date": "2025-07-01"}))

	matched, err := c.Filter(ctx, func(r map[string]any) bool { return r["date"] == "2025-07-01" })
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	none, err := c.Filter(ctx, func(r map[string]any) bool { return false })
	require.NoError(t, err)
	assert.Empty(t, none, "no matches is an empty slice, not an error")
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, data, "a missing key reads as nil, nil")

	require.NoError(t, s.Set(ctx, "k", []byte(`[{"id":"x"}]`)))
	data, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"x"}]`, string(data))

	require.NoError(t, s.Delete(ctx, "k"))
	data, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	type entity struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	record, err := Encode(entity{ID: "e1", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "e1", record["id"])

	var out entity
	require.NoError(t, Decode(record, &out))
	assert.Equal(t, entity{ID: "e1", Count: 3}, out)
}
