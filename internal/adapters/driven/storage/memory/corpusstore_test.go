package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

func TestNewCorpusStore(t *testing.T) {
	store := NewCorpusStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.byID)
}

func TestCorpusStore_Add_Success(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	doc := &domain.Document{
		ID:       "notes.txt",
		Filename: "notes.txt",
		Kind:     domain.KindText,
		Text:     "hello",
	}

	err := store.Add(ctx, doc)
	require.NoError(t, err)

	saved, err := store.Get(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", saved.ID)
	assert.Equal(t, "hello", saved.Text)
}

func TestCorpusStore_Add_DuplicateID(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	doc := &domain.Document{ID: "a.txt", Kind: domain.KindText}
	require.NoError(t, store.Add(ctx, doc))

	err := store.Add(ctx, &domain.Document{ID: "a.txt", Kind: domain.KindText})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCorpusStore_Add_Invalid(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	err := store.Add(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Add(ctx, &domain.Document{Kind: domain.KindText})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorpusStore_Get_NotFound(t *testing.T) {
	store := NewCorpusStore()

	doc, err := store.Get(context.Background(), "missing.txt")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, doc)
}

func TestCorpusStore_List_InsertionOrder(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	for _, id := range []string{"c.txt", "a.txt", "b.txt"} {
		require.NoError(t, store.Add(ctx, &domain.Document{ID: id, Kind: domain.KindText}))
	}

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// Order follows insertion, not ID.
	assert.Equal(t, "c.txt", docs[0].ID)
	assert.Equal(t, "a.txt", docs[1].ID)
	assert.Equal(t, "b.txt", docs[2].ID)
}

func TestCorpusStore_List_Empty(t *testing.T) {
	store := NewCorpusStore()

	docs, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Nil(t, docs)
}

func TestCorpusStore_Remove_Success(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	for _, id := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, store.Add(ctx, &domain.Document{ID: id, Kind: domain.KindText}))
	}

	err := store.Remove(ctx, "b.txt")
	require.NoError(t, err)

	_, err = store.Get(ctx, "b.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Remaining documents keep their relative order.
	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].ID)
	assert.Equal(t, "c.txt", docs[1].ID)
}

func TestCorpusStore_Remove_NotFound(t *testing.T) {
	store := NewCorpusStore()

	err := store.Remove(context.Background(), "missing.txt")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusStore_Clear(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "a.txt", Kind: domain.KindText}))
	require.NoError(t, store.Add(ctx, &domain.Document{ID: "b.txt", Kind: domain.KindText}))

	require.NoError(t, store.Clear(ctx))

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// The store is reusable after a clear.
	require.NoError(t, store.Add(ctx, &domain.Document{ID: "a.txt", Kind: domain.KindText}))
}

func TestCorpusStore_NextID_NoCollision(t *testing.T) {
	store := NewCorpusStore()

	id, err := store.NextID(context.Background(), "report.pdf")

	require.NoError(t, err)
	assert.Equal(t, "report.pdf", id)
}

func TestCorpusStore_NextID_Disambiguates(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Document{ID: "report.pdf", Kind: domain.KindPDF}))

	id, err := store.NextID(ctx, "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf-2", id)

	require.NoError(t, store.Add(ctx, &domain.Document{ID: id, Kind: domain.KindPDF}))

	id, err = store.NextID(ctx, "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf-3", id)
}

func TestCorpusStore_NextID_Empty(t *testing.T) {
	store := NewCorpusStore()

	_, err := store.NextID(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorpusStore_Concurrency_MixedOperations(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		doc := &domain.Document{ID: fmt.Sprintf("seed-%d.txt", i), Kind: domain.KindText}
		require.NoError(t, store.Add(ctx, doc))
	}

	var wg sync.WaitGroup
	numOperations := 100

	wg.Add(numOperations)
	for i := 0; i < numOperations; i++ {
		go func(id int) {
			defer wg.Done()
			switch id % 5 {
			case 0:
				doc := &domain.Document{ID: fmt.Sprintf("new-%d.txt", id), Kind: domain.KindText}
				_ = store.Add(ctx, doc)
			case 1:
				_, _ = store.Get(ctx, fmt.Sprintf("seed-%d.txt", id%10))
			case 2:
				_, _ = store.List(ctx)
			case 3:
				_, _ = store.NextID(ctx, "seed-0.txt")
			case 4:
				_, _ = store.Len(ctx)
			}
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock.
	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 10)
}

func TestCorpusStore_ContextCancellation(t *testing.T) {
	store := NewCorpusStore()

	// Operations are in-memory and complete even with a cancelled context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Add(ctx, &domain.Document{ID: "a.txt", Kind: domain.KindText})
	assert.NoError(t, err)

	_, err = store.Get(ctx, "a.txt")
	assert.NoError(t, err)

	_, err = store.List(ctx)
	assert.NoError(t, err)

	err = store.Remove(ctx, "a.txt")
	assert.NoError(t, err)

	err = store.Clear(ctx)
	assert.NoError(t, err)
}
