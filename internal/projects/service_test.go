package projects

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/docstore"
)

func newTestService() *Service {
	svc := NewService(NewDocRepo(docstore.NewMemory()))
	base := time.Unix(1700000000, 0)
	calls := 0
	svc.Now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return svc
}

func TestCreateRequiresCoreFields(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), Input{Name: "app", Technology: "Go"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{Name: "  ", Technology: "Go", Description: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{
		Name:        "portfolio",
		Technology:  "Go, Postgres",
		Description: "personal site backend",
		GithubURL:   "https://github.com/example/portfolio",
		Tags:        []string{"go", "api"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, Input{
			Name:        fmt.Sprintf("project-%d", i),
			Technology:  "Go",
			Description: "d",
		})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "project-3", items[0].Name)
	assert.Equal(t, "project-1", items[2].Name)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "app", Technology: "Go", Description: "v1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, Input{Name: "app", Technology: "Go", Description: "v2"})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
	assert.Equal(t, "v2", updated.Description)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "nope", Input{Name: "a", Technology: "b", Description: "c"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "app", Technology: "Go", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestGuardedRepoRejectsAnonymousWrites(t *testing.T) {
	svc := NewService(NewDocRepo(docstore.Guard(docstore.NewMemory())))
	svc.Now = time.Now

	_, err := svc.Create(context.Background(), Input{Name: "a", Technology: "b", Description: "c"})
	assert.ErrorIs(t, err, docstore.ErrPermissionDenied)

	created, err := svc.Create(docstore.WithAdmin(context.Background()), Input{Name: "a", Technology: "b", Description: "c"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
}
