package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Collection is the array-oriented storage adapter: a named sequence of
// JSON records kept under one key, each record carrying a top-level "id".
// Read-modify-write on a collection is not atomic; the last writer to the
// key wins in full. Accepted for single-user, single-device usage.
type Collection struct {
	store Store
	name  string
}

// NewCollection binds a collection name to a store.
func NewCollection(store Store, name string) *Collection {
	return &Collection{store: store, name: name}
}

// Records returns every raw record in the collection, empty when the key
// has never been written.
func (c *Collection) Records(ctx context.Context) ([]map[string]any, error) {
	data, err := c.store.Get(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.name, err)
	}
	if data == nil {
		return []map[string]any{}, nil
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", c.name, err)
	}
	return records, nil
}

// SetRecords replaces the whole collection.
func (c *Collection) SetRecords(ctx context.Context, records []map[string]any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.name, err)
	}
	if err := c.store.Set(ctx, c.name, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.name, err)
	}
	return nil
}

// Append adds one record to the end of the collection.
func (c *Collection) Append(ctx context.Context, v any) error {
	record, err := Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode record for %s: %w", c.name, err)
	}
	records, err := c.Records(ctx)
	if err != nil {
		return err
	}
	return c.SetRecords(ctx, append(records, record))
}

// Update merges partial fields into the record with the given id and stamps
// updatedAt. Returns the merged record, or ErrNotFound.
func (c *Collection) Update(ctx context.Context, id string, fields map[string]any) (map[string]any, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		if record["id"] != id {
			continue
		}
		for k, v := range fields {
			record[k] = v
		}
		record["updatedAt"] = time.Now().UTC()
		records[i] = record
		if err := c.SetRecords(ctx, records); err != nil {
			return nil, err
		}
		return record, nil
	}
	return nil, fmt.Errorf("update %s id %s: %w", c.name, id, ErrNotFound)
}

// Remove deletes the record with the given id, or returns ErrNotFound.
func (c *Collection) Remove(ctx context.Context, id string) error {
	records, err := c.Records(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, record := range records {
		if record["id"] != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("remove %s id %s: %w", c.name, id, ErrNotFound)
	}
	return c.SetRecords(ctx, kept)
}

// Find returns the first record matching the predicate, or ErrNotFound.
func (c *Collection) Find(ctx context.Context, pred func(map[string]any) bool) (map[string]any, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if pred(record) {
			return record, nil
		}
	}
	return nil, fmt.Errorf("find in %s: %w", c.name, ErrNotFound)
}

// Filter returns every record matching the predicate.
func (c *Collection) Filter(ctx context.Context, pred func(map[string]any) bool) ([]map[string]any, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]map[string]any, 0, len(records))
	for _, record := range records {
		if pred(record) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// Encode converts an entity into a raw JSON-compatible record.
func Encode(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Decode rehydrates a raw record into an entity.
func Decode(record map[string]any, out any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
