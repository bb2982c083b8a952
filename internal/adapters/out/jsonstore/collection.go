// Package jsonstore implements file-backed persistence for the food-ordering
// domain. Each collection is a single JSON file holding a flat array of
// records; every operation loads the whole file, works on the decoded slice
// and writes the whole file back. A per-collection mutex makes each
// read-mutate-write cycle atomic with respect to other operations on the same
// collection, and saves go through a temporary file plus rename so a crash
// never leaves a half-written collection behind.
package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Collection is a mutex-guarded JSON file holding records of type D.
// D must be a plain serializable struct; idOf extracts its identifier.
type Collection[D any] struct {
	path string
	idOf func(D) uuid.UUID
	mu   sync.Mutex
}

// NewCollection creates a collection backed by the file at path.
// The file does not have to exist yet; a missing file reads as empty.
func NewCollection[D any](path string, idOf func(D) uuid.UUID) (*Collection[D], error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if idOf == nil {
		return nil, errs.NewValueIsRequiredError("idOf")
	}

	return &Collection[D]{path: path, idOf: idOf}, nil
}

// Path returns the collection's backing file path.
func (c *Collection[D]) Path() string {
	return c.path
}

// load decodes the whole backing file. A missing file is an empty
// collection; any other failure means the collection is unavailable.
func (c *Collection[D]) load() ([]D, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []D{}, nil
		}
		return nil, errs.NewCollectionUnavailableError(c.path, err)
	}

	if len(raw) == 0 {
		return []D{}, nil
	}

	var records []D
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errs.NewCollectionUnavailableError(c.path, err)
	}
	return records, nil
}

// save writes the whole collection through a temporary file and renames it
// over the backing file, so readers never observe a partial write.
func (c *Collection[D]) save(records []D) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode collection")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.NewCollectionUnavailableError(c.path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return errs.NewCollectionUnavailableError(c.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.NewCollectionUnavailableError(c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.NewCollectionUnavailableError(c.path, err)
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return errs.NewCollectionUnavailableError(c.path, err)
	}
	return nil
}

// Add appends a new record. A record with the same ID already present is a
// conflict.
func (c *Collection[D]) Add(ctx context.Context, record D) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	id := c.idOf(record)
	for _, existing := range records {
		if c.idOf(existing) == id {
			return errs.NewConflictError(filepath.Base(c.path), id.String())
		}
	}

	return c.save(append(records, record))
}

// Update replaces the stored record carrying the same ID.
func (c *Collection[D]) Update(ctx context.Context, record D) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	id := c.idOf(record)
	for i, existing := range records {
		if c.idOf(existing) == id {
			records[i] = record
			return c.save(records)
		}
	}
	return errs.NewObjectNotFoundError(filepath.Base(c.path), id.String())
}

// RemoveByID removes the record with the given ID.
func (c *Collection[D]) RemoveByID(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	for i, existing := range records {
		if c.idOf(existing) == id {
			records = append(records[:i], records[i+1:]...)
			return c.save(records)
		}
	}
	return errs.NewObjectNotFoundError(filepath.Base(c.path), id.String())
}

// RemoveAll removes every record matching the predicate. Matching nothing is
// not an error.
func (c *Collection[D]) RemoveAll(ctx context.Context, match func(D) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	kept := records[:0]
	removed := false
	for _, existing := range records {
		if match(existing) {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	if !removed {
		return nil
	}
	return c.save(kept)
}

// GetByID retrieves the record with the given ID.
func (c *Collection[D]) GetByID(ctx context.Context, id uuid.UUID) (D, error) {
	var zero D
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return zero, err
	}

	for _, existing := range records {
		if c.idOf(existing) == id {
			return existing, nil
		}
	}
	return zero, errs.NewObjectNotFoundError(filepath.Base(c.path), id.String())
}

// GetAll retrieves every record in file order.
func (c *Collection[D]) GetAll(ctx context.Context) ([]D, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load()
}

// FindAll retrieves every record matching the predicate, in file order.
func (c *Collection[D]) FindAll(ctx context.Context, match func(D) bool) ([]D, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}

	found := make([]D, 0, len(records))
	for _, existing := range records {
		if match(existing) {
			found = append(found, existing)
		}
	}
	return found, nil
}

// FindFirst retrieves the first record matching the predicate.
func (c *Collection[D]) FindFirst(ctx context.Context, match func(D) bool) (D, error) {
	var zero D
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return zero, err
	}

	for _, existing := range records {
		if match(existing) {
			return existing, nil
		}
	}
	return zero, errs.NewObjectNotFoundError(filepath.Base(c.path), "first match")
}

// Mutate loads the record with the given ID, applies fn to it and persists
// the result, all under the collection lock. It is the compare-and-swap
// primitive of the store: fn sees the freshest stored state and its error
// aborts the write untouched.
func (c *Collection[D]) Mutate(ctx context.Context, id uuid.UUID, fn func(D) (D, error)) (D, error) {
	var zero D
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return zero, err
	}

	for i, existing := range records {
		if c.idOf(existing) == id {
			mutated, err := fn(existing)
			if err != nil {
				return zero, err
			}
			records[i] = mutated
			if err := c.save(records); err != nil {
				return zero, err
			}
			return mutated, nil
		}
	}
	return zero, errs.NewObjectNotFoundError(filepath.Base(c.path), id.String())
}
