package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
)

func TestSeedMenuSkipsWhenCatalogExists(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(pgxmockv3.NewRows([]string{"count"}).AddRow(int64(13)))

	if err := storage.SeedMenu(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSeedMenuInsertsDefaultCatalog(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(pgxmockv3.NewRows([]string{"count"}).AddRow(int64(0)))
	for range defaultMenu {
		mock.ExpectQuery("INSERT INTO menu_items").
			WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
			WillReturnRows(
				pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	}

	if err := storage.SeedMenu(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSeedAdminSkipsExistingAccount(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM admins WHERE login=").WithArgs("admin").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "login", "password_hash", "created_at"}).AddRow(int64(1), "admin", "hash", now))

	if err := storage.SeedAdmin(context.Background(), "admin", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeedAdminCreatesAccount(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM admins WHERE login=").WithArgs("admin").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO admins").WithArgs("admin", "hash").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	if err := storage.SeedAdmin(context.Background(), "admin", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
