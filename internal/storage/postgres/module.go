package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/anandpatel/cafewala/internal/config"
	"github.com/anandpatel/cafewala/internal/domain/repository"
	pkgAuth "github.com/anandpatel/cafewala/internal/pkg/auth"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.MenuRepository { return s.Menu() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ReservationRepository { return s.Reservations() },
		func(s *Storage) repository.ContactRepository { return s.Contacts() },
		func(s *Storage) repository.AdminRepository { return s.Admins() },
	),
	fx.Invoke(registerLifecycle),
	fx.Invoke(seedDefaults),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}

type seedParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Storage *Storage
	Hasher  pkgAuth.PasswordHasher
}

func seedDefaults(p seedParams) error {
	if err := p.Storage.SeedMenu(p.Ctx); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}

	if p.Config.AdminPassword == "" {
		return nil
	}
	hash, err := p.Hasher.Hash(p.Config.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := p.Storage.SeedAdmin(p.Ctx, p.Config.AdminLogin, hash); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
