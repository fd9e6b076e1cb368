package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/cardtoken/internal/database"
)

// migrationsSource returns the migration directory of driver. Anything but
// mysql reads the postgresql directory.
func migrationsSource(driver string) string {
	if driver == database.DriverMySQL {
		return "file://migrations/mysql"
	}
	return "file://migrations/postgresql"
}

func newMigrate(driver, connectionString string) (*migrate.Migrate, error) {
	m, err := migrate.New(migrationsSource(driver), connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending migration when steps is 0. Otherwise it
// moves steps migrations forward, or back when steps is negative.
func RunMigrations(logger *slog.Logger, driver, connectionString string, steps int) error {
	logger.Info("running database migrations",
		slog.String("driver", driver),
		slog.Int("steps", steps),
	)

	m, err := newMigrate(driver, connectionString)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	if steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// RunMigrationVersion prints the applied schema version and its dirty flag.
func RunMigrationVersion(logger *slog.Logger, writer io.Writer, driver, connectionString, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	m, err := newMigrate(driver, connectionString)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if format == formatJSON {
		return writeJSON(writer, map[string]any{
			"version": version,
			"dirty":   dirty,
		})
	}

	if errors.Is(err, migrate.ErrNilVersion) {
		_, err = fmt.Fprintln(writer, "No migration applied")
		return err
	}
	_, err = fmt.Fprintf(writer, "Version: %d (dirty: %t)\n", version, dirty)
	return err
}
