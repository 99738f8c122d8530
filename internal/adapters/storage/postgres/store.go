package postgres

import (
	"context"
	"database/sql"

	"peptide-protocol-tracker/internal/ports/storage"
)

type store struct {
	db *sql.DB
}

// NewStore crea el store clave-valor sobre una única tabla kv_store.
// Cada clave guarda un documento JSON completo; el patrón de acceso del
// dominio es leer el valor entero y reescribirlo entero.
func NewStore(db *sql.DB) storage.Store {
	return &store{db: db}
}

// EnsureSchema crea la tabla kv_store si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			k          TEXT PRIMARY KEY,
			v          JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT v FROM kv_store WHERE k = $1
	`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (k, v, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, updated_at = now()
	`, key, value)
	return err
}

func (s *store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM kv_store WHERE k = $1
	`, key)
	return err
}
