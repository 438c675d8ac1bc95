package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresPutUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPostgres(db)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("resume/current", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Put(context.Background(), "resume/current", map[string]any{"version": 3}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPostgresGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPostgres(db)

	mock.ExpectQuery("SELECT doc FROM documents").
		WithArgs("resume/current").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	if _, err := store.Get(context.Background(), "resume/current"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPostgresListUsesPrefixPattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPostgres(db)

	rows := sqlmock.NewRows([]string{"path", "doc"}).
		AddRow("projects/a", []byte(`{"name":"a"}`)).
		AddRow("projects/b", []byte(`{"name":"b"}`))
	mock.ExpectQuery("SELECT path, doc FROM documents").
		WithArgs("projects/%").
		WillReturnRows(rows)

	docs, err := store.List(context.Background(), "projects")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPostgresRemovePublishesOnlyWhenDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPostgres(db)

	var deliveries int
	// Initial snapshot read on subscribe.
	mock.ExpectQuery("SELECT doc FROM documents").
		WithArgs("resume/current").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))
	unsubscribe := store.Subscribe("resume/current", func(doc json.RawMessage) {
		if doc == nil {
			deliveries++
		}
	})
	t.Cleanup(unsubscribe)

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("resume/current").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := store.Remove(context.Background(), "resume/current"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if deliveries != 1 {
		t.Fatalf("expected no publish for a no-op delete, got %d deliveries", deliveries)
	}

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("resume/current").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := store.Remove(context.Background(), "resume/current"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if deliveries != 2 {
		t.Fatalf("expected publish after real delete, got %d deliveries", deliveries)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
