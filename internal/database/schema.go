package database

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the drop-and-recreate script applied by ResetSchema.
func Schema() string {
	return schemaSQL
}

// EnsureDatabase creates the named database unless it already exists. admin
// must be connected to a different database on the same server, since
// PostgreSQL cannot create the database a session is attached to.
func EnsureDatabase(ctx context.Context, admin *sqlx.DB, name string) (bool, error) {
	var exists bool
	err := admin.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name)
	if err != nil {
		return false, errors.Wrapf(err, "check database %q", name)
	}

	if exists {
		return false, nil
	}

	// CREATE DATABASE takes no bind parameters.
	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return false, errors.Wrapf(err, "create database %q", name)
	}

	return true, nil
}

// ResetSchema drops every application table and recreates it in a single
// transaction. All existing data is lost. On error nothing is applied.
func ResetSchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin schema transaction")
	}

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "apply schema")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit schema")
	}

	return nil
}
