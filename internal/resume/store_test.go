package resume

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/docstore"
)

func TestStorePutWritesRecordAndProjection(t *testing.T) {
	docs := docstore.NewMemory()
	store := NewStore(docs)
	ctx := context.Background()

	rec := Record{
		ID:          "resume_v3_1700000000000",
		FileName:    "cv.pdf",
		FileURL:     "https://res.cloudinary.com/demo/raw/upload/portfolio/resume/resume_3",
		FileSize:    4096,
		UploadedAt:  "2023-11-14T22:13:20Z",
		Version:     3,
		StorageType: StorageCloudinary,
		PublicID:    "portfolio/resume/resume_3",
	}
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	raw, err := docs.Get(ctx, "metadata/resume")
	require.NoError(t, err)
	var meta Metadata
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, rec.FileURL, meta.URL)
	assert.Equal(t, rec.FileName, meta.FileName)
	assert.Equal(t, rec.UploadedAt, meta.LastUpdated)
	assert.Equal(t, rec.Version, meta.Version)
}

func TestStoreGetEmptySlot(t *testing.T) {
	store := NewStore(docstore.NewMemory())

	got, err := store.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreRemoveClearsBothPaths(t *testing.T) {
	docs := docstore.NewMemory()
	store := NewStore(docs)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Record{ID: "resume_v1_1", Version: 1}))
	require.NoError(t, store.Remove(ctx))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = docs.Get(ctx, "metadata/resume")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestStoreGuardedWritesNeedAdmin(t *testing.T) {
	store := NewStore(docstore.Guard(docstore.NewMemory()))
	ctx := context.Background()

	err := store.Put(ctx, Record{ID: "resume_v1_1", Version: 1})
	assert.ErrorIs(t, err, docstore.ErrPermissionDenied)

	admin := docstore.WithAdmin(ctx)
	require.NoError(t, store.Put(admin, Record{ID: "resume_v1_1", Version: 1}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Version)
}

func TestStoreSubscribeDeliversDecodedSnapshots(t *testing.T) {
	docs := docstore.NewMemory()
	store := NewStore(docs)
	ctx := context.Background()

	var seen []*Record
	unsubscribe := store.Subscribe(func(rec *Record) { seen = append(seen, rec) })
	t.Cleanup(unsubscribe)

	require.Len(t, seen, 1)
	assert.Nil(t, seen[0], "initial snapshot of an empty slot is nil")

	require.NoError(t, store.Put(ctx, Record{ID: "resume_v1_1", Version: 1}))
	require.Len(t, seen, 2)
	require.NotNil(t, seen[1])
	assert.Equal(t, 1, seen[1].Version)

	require.NoError(t, store.Remove(ctx))
	require.Len(t, seen, 3)
	assert.Nil(t, seen[2])
}
