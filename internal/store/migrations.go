package store

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("crear schema_version: %w", err)
	}

	var version int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return fmt.Errorf("leer version de esquema: %w", err)
	}

	if version < 1 {
		if err := migrateV1(ctx, tx); err != nil {
			return fmt.Errorf("migracion v1: %w", err)
		}
	}

	return tx.Commit()
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scenarios (
			id          TEXT PRIMARY KEY,
			nombre      TEXT NOT NULL UNIQUE,
			descripcion TEXT NOT NULL DEFAULT '',
			config      TEXT NOT NULL,
			overrides   TEXT NOT NULL DEFAULT '{}',
			created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scenarios_nombre ON scenarios(nombre)`,

		`CREATE TABLE IF NOT EXISTS runs (
			id            TEXT PRIMARY KEY,
			scenario_id   TEXT NOT NULL REFERENCES scenarios(id),
			año_inicio    INTEGER NOT NULL,
			año_fin       INTEGER NOT NULL,
			utilidad_neta REAL NOT NULL,
			valido        INTEGER NOT NULL DEFAULT 0,
			resultado     TEXT NOT NULL,
			created_at    TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,

		`INSERT INTO schema_version (version) VALUES (1)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ejecutar %q: %w", stmt[:40], err)
		}
	}

	return nil
}
