package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/registrar/internal/pkg/slots"
)

// PostgresSlots keeps slots in the storage_slots table created by the
// embedded migrations.
type PostgresSlots struct {
	pool *pgxpool.Pool
}

// NewPostgresSlots creates a slot store over an open pool
func NewPostgresSlots(pool *pgxpool.Pool) *PostgresSlots {
	return &PostgresSlots{pool: pool}
}

// Load returns the stored value of key
func (p *PostgresSlots) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx, `SELECT slot_value FROM storage_slots WHERE slot_key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error loading slot %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Save upserts the value of key
func (p *PostgresSlots) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO storage_slots (slot_key, slot_value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (slot_key) DO UPDATE SET slot_value = EXCLUDED.slot_value, updated_at = NOW()`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("error saving slot %s: %w", key, err)
	}
	return nil
}

var _ slots.Store = (*PostgresSlots)(nil)
