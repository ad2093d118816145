package store

import (
	"context"
	"database/sql"
)

// Postgres keeps saves in the saves table, one row per slot
type Postgres struct {
	db   *sql.DB
	slot string
}

// NewPostgres returns a Postgres store for the slot
func NewPostgres(db *sql.DB, slot string) *Postgres {
	return &Postgres{
		db:   db,
		slot: slot,
	}
}

// Load returns the save for the slot
func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	const query = `
SELECT data
FROM saves
WHERE slot = $1`

	var data string
	if err := p.db.QueryRowContext(ctx, query, p.slot).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return []byte(data), nil
}

// Save upserts the save for the slot
func (p *Postgres) Save(ctx context.Context, data []byte) error {
	const query = `
INSERT INTO saves (slot, data)
VALUES ($1, $2)
ON CONFLICT (slot) DO UPDATE
SET data = EXCLUDED.data,
    updated = NOW()`

	_, err := p.db.ExecContext(ctx, query, p.slot, string(data))
	return err
}

// Delete removes the save for the slot
func (p *Postgres) Delete(ctx context.Context) error {
	const query = `
DELETE FROM saves
WHERE slot = $1`

	_, err := p.db.ExecContext(ctx, query, p.slot)
	return err
}
