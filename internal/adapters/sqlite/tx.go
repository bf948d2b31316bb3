package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// storeTx wraps a write so the value and its timestamp land together
type storeTx struct {
	tx  *sql.Tx
	now func() time.Time
}

func (s *Store) begin(ctx context.Context) (*storeTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx, now: time.Now}, nil
}

// put inserts or replaces a value
func (t *storeTx) put(key string, value []byte) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, t.now().Unix())
	return err
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
