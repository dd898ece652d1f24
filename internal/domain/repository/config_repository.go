package repository

import (
	"context"

	"tienda/internal/domain/entity"
)

// SettingRepository defines persistence operations for key/value settings.
type SettingRepository interface {
	// FindAll returns every stored setting.
	FindAll(ctx context.Context) ([]*entity.Setting, error)

	// Upsert inserts or overwrites a single setting.
	Upsert(ctx context.Context, setting *entity.Setting) error
}

// AgenciaRepository defines persistence operations for the agency singleton.
type AgenciaRepository interface {
	// FindFirst returns the single agency row, or ErrNotFound when none exists.
	FindFirst(ctx context.Context) (*entity.Agencia, error)

	// EnsureDefault inserts agencia as the singleton row unless one exists,
	// then returns the stored row.
	EnsureDefault(ctx context.Context, agencia *entity.Agencia) (*entity.Agencia, error)
	Update(ctx context.Context, agencia *entity.Agencia) error
}

// FotosRepository defines persistence operations for the photos singleton.
type FotosRepository interface {
	FindFirst(ctx context.Context) (*entity.Fotos, error)
	EnsureDefault(ctx context.Context, fotos *entity.Fotos) (*entity.Fotos, error)
	Update(ctx context.Context, fotos *entity.Fotos) error
}
