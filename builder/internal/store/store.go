// CLAUDE:SUMMARY SQLite database handle for the builder — opens DB with atelier pragmas and applies schema.
// Package store provides the SQLite persistence layer for the builder:
// projects, pages, their element sets, and the audit log.
package store

import (
	"database/sql"

	"github.com/pagewright/atelier/dbopen"
)

// Store is the builder database handle.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the builder SQLite database at path, applies the
// atelier pragmas and the builder schema.
func Open(path string, opts ...dbopen.Option) (*Store, error) {
	allOpts := append([]dbopen.Option{
		dbopen.WithMkdirAll(),
		dbopen.WithSchema(Schema),
	}, opts...)

	db, err := dbopen.Open(path, allOpts...)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}
