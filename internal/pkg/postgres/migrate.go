package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"brokerage/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate выполняет команду goose (up, down, status, ...) над встроенными миграциями.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations.FS)

	err := goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	err = goose.RunContext(ctx, command, db, ".", args...)
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
