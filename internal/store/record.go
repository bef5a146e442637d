package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecordRepo persists named JSON records as whole values. One record per
// name; every Save replaces the previous value in a single statement, so
// readers never observe a partial write.
type RecordRepo interface {
	// Load reads the record stored under name. ok is false when absent.
	Load(name string) (data []byte, ok bool, err error)

	// Save upserts the record under name.
	Save(name string, data []byte) error

	// Delete removes the record under name. Deleting an absent record
	// is not an error.
	Delete(name string) error
}

type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Load(name string) ([]byte, bool, error) {
	var data string
	err := r.db.QueryRow(`SELECT data FROM records WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load record %q: %w", name, err)
	}
	return []byte(data), true, nil
}

func (r *recordRepo) Save(name string, data []byte) error {
	_, err := r.db.Exec(
		`INSERT INTO records (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save record %q: %w", name, err)
	}
	return nil
}

func (r *recordRepo) Delete(name string) error {
	_, err := r.db.Exec(`DELETE FROM records WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", name, err)
	}
	return nil
}
