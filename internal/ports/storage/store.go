package storage

import (
	"context"
	"encoding/json"
)

// Store es el puerto de persistencia: un store clave-string => JSON crudo.
// El dominio no depende de ninguna tecnología concreta más allá de este
// contrato get/set (adapters: memoria y postgres).
type Store interface {
	// Get devuelve el valor y ok=false si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON carga y decodifica el valor de key. Valor ausente o corrupto
// degrada al fallback provisto por el caller (nunca un error de parseo);
// solo errores de I/O del store se propagan.
func LoadJSON[T any](ctx context.Context, s Store, key string, fallback T) (T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, nil
	}
	return v, nil
}

// SaveJSON serializa v y lo escribe completo bajo key (sin escrituras
// parciales).
func SaveJSON[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
