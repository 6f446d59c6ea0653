package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
)

func TestAdminCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Admins()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO admins").WithArgs("admin", "hash").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	admin, err := repo.Create(context.Background(), "admin", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != 1 || admin.Login != "admin" {
		t.Fatalf("unexpected admin %+v", admin)
	}

	mock.ExpectQuery("INSERT INTO admins").WithArgs("admin", "hash").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})
	if _, err := repo.Create(context.Background(), "admin", "hash"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAdminGetByLogin(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Admins()
	now := time.Now()

	mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM admins WHERE login=").WithArgs("admin").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "login", "password_hash", "created_at"}).AddRow(int64(1), "admin", "hash", now))

	admin, err := repo.GetByLogin(context.Background(), "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.PasswordHash != "hash" {
		t.Fatalf("unexpected admin %+v", admin)
	}

	mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM admins WHERE login=").WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByLogin(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdminGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Admins()
	now := time.Now()

	mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM admins WHERE id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "login", "password_hash", "created_at"}).AddRow(int64(1), "admin", "hash", now))

	admin, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.Login != "admin" {
		t.Fatalf("unexpected admin %+v", admin)
	}

	mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM admins WHERE id=").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
