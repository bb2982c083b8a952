package jsonstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"foodorder/internal/adapters/out/jsonstore"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

func newCollection(t *testing.T) *jsonstore.Collection[recordDTO] {
	t.Helper()
	c, err := jsonstore.NewCollection(
		filepath.Join(t.TempDir(), "records.json"),
		func(r recordDTO) uuid.UUID { return r.ID })
	require.NoError(t, err)
	return c
}

func TestCollection_AddAndGet(t *testing.T) {
	ctx := context.Background()
	collection := newCollection(t)

	t.Run("missing file reads as empty", func(t *testing.T) {
		all, err := collection.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("added record comes back by ID", func(t *testing.T) {
		record := recordDTO{ID: uuid.New(), Name: "first", Count: 1}
		require.NoError(t, collection.Add(ctx, record))

		got, err := collection.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("adding the same ID twice is a conflict", func(t *testing.T) {
		record := recordDTO{ID: uuid.New(), Name: "dup"}
		require.NoError(t, collection.Add(ctx, record))

		err := collection.Add(ctx, record)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("unknown ID is not found", func(t *testing.T) {
		_, err := collection.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCollection_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	collection := newCollection(t)

	record := recordDTO{ID: uuid.New(), Name: "original", Count: 1}
	require.NoError(t, collection.Add(ctx, record))

	t.Run("update replaces the stored record", func(t *testing.T) {
		record.Name = "renamed"
		require.NoError(t, collection.Update(ctx, record))

		got, err := collection.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
	})

	t.Run("update of an unknown record is not found", func(t *testing.T) {
		err := collection.Update(ctx, recordDTO{ID: uuid.New()})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("remove by ID deletes the record", func(t *testing.T) {
		require.NoError(t, collection.RemoveByID(ctx, record.ID))

		_, err := collection.GetByID(ctx, record.ID)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("remove all by predicate keeps the rest", func(t *testing.T) {
		keep := recordDTO{ID: uuid.New(), Name: "keep"}
		drop := recordDTO{ID: uuid.New(), Name: "drop"}
		require.NoError(t, collection.Add(ctx, keep))
		require.NoError(t, collection.Add(ctx, drop))

		err := collection.RemoveAll(ctx, func(r recordDTO) bool { return r.Name == "drop" })
		require.NoError(t, err)

		all, err := collection.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, keep.ID, all[0].ID)
	})
}

func TestCollection_Find(t *testing.T) {
	ctx := context.Background()
	collection := newCollection(t)

	first := recordDTO{ID: uuid.New(), Name: "match", Count: 1}
	second := recordDTO{ID: uuid.New(), Name: "match", Count: 2}
	other := recordDTO{ID: uuid.New(), Name: "other", Count: 3}
	for _, r := range []recordDTO{first, second, other} {
		require.NoError(t, collection.Add(ctx, r))
	}

	t.Run("find all matches in file order", func(t *testing.T) {
		found, err := collection.FindAll(ctx, func(r recordDTO) bool { return r.Name == "match" })
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, 1, found[0].Count)
		assert.Equal(t, 2, found[1].Count)
	})

	t.Run("find first returns the earliest match", func(t *testing.T) {
		found, err := collection.FindFirst(ctx, func(r recordDTO) bool { return r.Name == "match" })
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("find first with no match is not found", func(t *testing.T) {
		_, err := collection.FindFirst(ctx, func(r recordDTO) bool { return false })
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCollection_Mutate(t *testing.T) {
	ctx := context.Background()
	collection := newCollection(t)

	record := recordDTO{ID: uuid.New(), Name: "counter", Count: 0}
	require.NoError(t, collection.Add(ctx, record))

	t.Run("applies the mutation under the lock", func(t *testing.T) {
		mutated, err := collection.Mutate(ctx, record.ID, func(r recordDTO) (recordDTO, error) {
			r.Count++
			return r, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, mutated.Count)

		got, err := collection.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Count)
	})

	t.Run("a failing mutation leaves the record untouched", func(t *testing.T) {
		_, err := collection.Mutate(ctx, record.ID, func(r recordDTO) (recordDTO, error) {
			return r, errs.NewConflictError("records", r.ID.String())
		})
		require.ErrorIs(t, err, errs.ErrConflict)

		got, err := collection.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Count)
	})

	t.Run("concurrent mutations never lose an increment", func(t *testing.T) {
		const writers = 20
		var wg sync.WaitGroup
		wg.Add(writers)
		for i := 0; i < writers; i++ {
			go func() {
				defer wg.Done()
				_, err := collection.Mutate(ctx, record.ID, func(r recordDTO) (recordDTO, error) {
					r.Count++
					return r, nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := collection.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, 1+writers, got.Count)
	})
}

func TestCollection_Unavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt file is unavailable, not empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		collection, err := jsonstore.NewCollection(path, func(r recordDTO) uuid.UUID { return r.ID })
		require.NoError(t, err)

		_, err = collection.GetAll(ctx)
		require.ErrorIs(t, err, errs.ErrCollectionUnavailable)
	})

	t.Run("empty file reads as empty collection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		collection, err := jsonstore.NewCollection(path, func(r recordDTO) uuid.UUID { return r.ID })
		require.NoError(t, err)

		all, err := collection.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
