// Package store gives named arrays a durable home across REPL
// sessions, backed by modernc.org/sqlite. The array core itself stays
// synchronous and storage-free; this is a host-side convenience built
// on top of it, never imported by internal/array.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"arraycore/internal/array"
)

const schema = `
CREATE TABLE IF NOT EXISTS arrays (
	id       TEXT PRIMARY KEY,
	name     TEXT UNIQUE NOT NULL,
	data     TEXT NOT NULL,
	saved_at DATETIME NOT NULL
);`

// Store is a named-array table guarded against concurrent REPL/
// netstream access by a single mutex owning the connection.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates (or reuses) a sqlite file at path and ensures the
// arrays table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Save persists v under name, overwriting any existing value.
func (s *Store) Save(name string, v array.Value) error {
	payload, err := encodeValue(v)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", name, err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("store: marshal %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(
		`INSERT INTO arrays (id, name, data, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		uuid.NewString(), name, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}
	return nil
}

// Load reads the value last saved under name.
func (s *Store) Load(name string) (array.Value, error) {
	s.mu.Lock()
	row := s.db.QueryRow(`SELECT data FROM arrays WHERE name = ?`, name)
	var data string
	err := row.Scan(&data)
	s.mu.Unlock()
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("store: no array named %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}

	var payload wireValue
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("store: corrupt record for %q: %w", name, err)
	}
	return decodeValue(payload)
}

// List returns every stored array's name, most recently saved first.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	rows, err := s.db.Query(`SELECT name FROM arrays ORDER BY saved_at DESC`)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the array stored under name, if any.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM arrays WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	return nil
}

// wireValue is the JSON-serializable mirror of array.Value: Kind
// selects the populated fields, Num for a number, Char for a char, and
// Shape, Storage and the matching data field for an array.
type wireValue struct {
	Kind    string      `json:"kind"`
	Num     float64     `json:"num,omitempty"`
	Char    rune        `json:"char,omitempty"`
	Shape   []int       `json:"shape,omitempty"`
	Storage string      `json:"storage,omitempty"` // "numbers" | "chars" | "values", array kind only
	Nums    []float64   `json:"nums,omitempty"`
	Chars   string      `json:"chars,omitempty"`
	Vals    []wireValue `json:"vals,omitempty"`
}

func encodeValue(v array.Value) (wireValue, error) {
	switch x := v.(type) {
	case array.Number:
		return wireValue{Kind: "number", Num: float64(x)}, nil
	case array.Char:
		return wireValue{Kind: "char", Char: rune(x)}, nil
	case *array.Array:
		return encodeArray(x)
	default:
		return wireValue{}, fmt.Errorf("cannot persist a value of type %T", v)
	}
}

func encodeArray(a *array.Array) (wireValue, error) {
	out := wireValue{Kind: "array", Shape: a.Shape}
	switch a.Storage {
	case array.StorageNumbers:
		out.Storage = "numbers"
		out.Nums = a.Nums
	case array.StorageChars:
		out.Storage = "chars"
		out.Chars = string(a.Chars)
	default:
		out.Storage = "values"
		vals := make([]wireValue, len(a.Vals))
		for i, v := range a.Vals {
			wv, err := encodeValue(v)
			if err != nil {
				return wireValue{}, err
			}
			vals[i] = wv
		}
		out.Vals = vals
	}
	return out, nil
}

func decodeValue(w wireValue) (array.Value, error) {
	switch w.Kind {
	case "number":
		return array.Number(w.Num), nil
	case "char":
		return array.Char(w.Char), nil
	case "array":
		return decodeArray(w)
	default:
		return nil, fmt.Errorf("store: unknown stored kind %q", w.Kind)
	}
}

func decodeArray(w wireValue) (*array.Array, error) {
	switch w.Storage {
	case "numbers":
		return &array.Array{Shape: w.Shape, Storage: array.StorageNumbers, Nums: w.Nums}, nil
	case "chars":
		return &array.Array{Shape: w.Shape, Storage: array.StorageChars, Chars: []rune(w.Chars)}, nil
	case "values":
		vals := make([]array.Value, len(w.Vals))
		for i, wv := range w.Vals {
			v, err := decodeValue(wv)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return &array.Array{Shape: w.Shape, Storage: array.StorageValues, Vals: vals}, nil
	default:
		return nil, fmt.Errorf("store: unknown array storage %q", w.Storage)
	}
}
