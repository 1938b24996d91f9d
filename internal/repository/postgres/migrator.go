package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"microblog-service/internal/logger"
)

// RunMigrations brings the schema up to date before the server starts serving.
// Running against an already-migrated database is not an error.
func RunMigrations(databaseURL, migrationsPath string, log *logger.Logger) error {
	url := databaseURL
	if strings.HasPrefix(url, "postgres://") {
		url = "pgx5://" + strings.TrimPrefix(url, "postgres://")
	} else if strings.HasPrefix(url, "postgresql://") {
		url = "pgx5://" + strings.TrimPrefix(url, "postgresql://")
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), url)
	if err != nil {
		return fmt.Errorf("error creating migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("Failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("Failed to close migration database connection", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info("Database schema migrations applied")
	return nil
}
