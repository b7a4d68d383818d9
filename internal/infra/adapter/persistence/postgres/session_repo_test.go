package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"claritext/internal/domain/entity"
	"claritext/internal/infra/adapter/persistence/postgres"
)

func sessionRows(sessions ...*entity.AnalysisSession) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "operation", "mode", "input_chars", "result", "created_at",
	})
	for _, s := range sessions {
		rows.AddRow(s.ID, s.Operation, s.Mode, s.InputChars, s.Result, s.CreatedAt)
	}
	return rows
}

func TestSessionRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	session := &entity.AnalysisSession{
		Operation:  "normalize",
		Mode:       "full",
		InputChars: 42,
		Result:     "el niño corre",
		CreatedAt:  now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO analysis_sessions`)).
		WithArgs("normalize", "full", 42, "el niño corre", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := postgres.NewSessionRepo(db)
	if err := repo.Create(context.Background(), session); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if session.ID != 7 {
		t.Fatalf("expected generated ID 7, got %d", session.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSessionRepo_Create_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO analysis_sessions`)).
		WillReturnError(errors.New("connection refused"))

	repo := postgres.NewSessionRepo(db)
	err := repo.Create(context.Background(), &entity.AnalysisSession{Operation: "summarize"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSessionRepo_ListRecent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	want := []*entity.AnalysisSession{
		{ID: 2, Operation: "summarize", Mode: "full", InputChars: 300, Result: "resumen", CreatedAt: now},
		{ID: 1, Operation: "normalize", Mode: "heuristic", InputChars: 20, Result: "texto", CreatedAt: now.Add(-time.Minute)},
	}

	mock.ExpectQuery(`FROM analysis_sessions`).
		WithArgs(20).
		WillReturnRows(sessionRows(want...))

	repo := postgres.NewSessionRepo(db)
	got, err := repo.ListRecent(context.Background(), 20)
	if err != nil {
		t.Fatalf("ListRecent err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSessionRepo_ListRecent_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM analysis_sessions`).
		WithArgs(10).
		WillReturnRows(sessionRows())

	repo := postgres.NewSessionRepo(db)
	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d sessions", len(got))
	}
}

func TestSessionRepo_CountByOperation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`GROUP BY operation`).
		WillReturnRows(sqlmock.NewRows([]string{"operation", "count"}).
			AddRow("normalize", int64(12)).
			AddRow("summarize", int64(5)))

	repo := postgres.NewSessionRepo(db)
	got, err := repo.CountByOperation(context.Background())
	if err != nil {
		t.Fatalf("CountByOperation err=%v", err)
	}

	want := map[string]int64{"normalize": 12, "summarize": 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
