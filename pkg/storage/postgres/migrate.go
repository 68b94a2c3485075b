package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"shipments/pkg/storage"

	"github.com/pressly/goose/v3"
)

// MigrationsDir is the directory inside the embedded filesystem holding the
// goose migrations.
const MigrationsDir = "migrations"

// Migrate applies every pending goose migration found under MigrationsDir in
// fsys and returns the number of migrations applied.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS) (int, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return 0, storage.ErrAlreadyInTx
	}

	migrations, err := fs.Sub(fsys, MigrationsDir)
	if err != nil {
		return 0, fmt.Errorf("could not open migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return 0, fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not migrate pgsql: %w", err)
	}

	return len(results), nil
}
