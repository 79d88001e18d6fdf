package store

import (
	"database/sql"
	"errors"
	"time"
)

// Slot keys. Each slot holds one JSON document.
const (
	slotHistory = "history"
	slotGoal    = "goal"
)

// readSlot returns the raw JSON value of a slot. The second return is
// false when the slot has never been written.
func (s *Store) readSlot(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Reset deletes all persisted slots, returning the app to its fresh
// state (demo history, default goal) on next load.
func (s *Store) Reset() error {
	_, err := s.db.Exec(`DELETE FROM slots`)
	return err
}

// writeSlot upserts a slot value.
func (s *Store) writeSlot(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}
