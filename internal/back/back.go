package back

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
)

// Back holds the domain logic: the player registry, the game history, and
// the rating engine. Everything goes through a single SQLite handle.
type Back struct {
	db *sqlx.DB
}

func New(sqlDriver string, sqlDSN string) (*Back, error) {
	db, err := sqlx.Connect(sqlDriver, sqlDSN)
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer anyway, a second conn buys nothing here.
	db.SetMaxOpenConns(1)

	return &Back{
		db: db,
	}, nil
}

// Migrate brings the schema up to date, creating the tables on first run.
// Safe to call on every startup.
func Migrate(migrationsDir, sqlPath string) error {
	m, err := migrate.New("file://"+migrationsDir, "sqlite3://"+sqlPath)
	if err != nil {
		return fmt.Errorf("unable to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("unable to migrate: %w", err)
	}

	return nil
}

type transactionCallback func(*sqlx.Tx) error

func (b *Back) transaction(cb transactionCallback) error {
	tx, err := b.db.Beginx()
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			return fmt.Errorf("rollback error: %s\noriginal error: %s", err2, err)
		}

		return err
	}

	return tx.Commit()
}
