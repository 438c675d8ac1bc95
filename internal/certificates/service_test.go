package certificates

import (
	"context"
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

func TestCreateRequiresTitleIssuerDate(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), Input{Title: "AWS SAA", Issuer: "AWS"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAndRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{
		Title:        "AWS Solutions Architect Associate",
		Issuer:       "Amazon Web Services",
		Date:         "2024-03",
		Skills:       []string{"cloud", "networking"},
		CredentialID: "ABC-123",
		VerifyURL:    "https://aws.amazon.com/verification",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Title: "first", Issuer: "i", Date: "2023-01"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, Input{Title: "second", Issuer: "i", Date: "2024-01"})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Title: "t", Issuer: "i", Date: "2024-01"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, Input{
		Title:   "t",
		Issuer:  "i",
		Date:    "2024-01",
		FileURL: "https://res.cloudinary.com/demo/image/upload/cert.png",
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEmpty(t, updated.FileURL)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "nope", Input{Title: "t", Issuer: "i", Date: "d"})
	assert.ErrorIs(t, err, ErrNotFound)
}
