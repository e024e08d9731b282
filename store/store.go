package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// Schema for the data table. Column names follow the morph.io scraper
// convention so existing consumers of the dataset keep working.
const Schema = `
CREATE TABLE IF NOT EXISTS [data] (
	[council_reference] TEXT NOT NULL PRIMARY KEY,
	[address] TEXT NOT NULL,
	[description] TEXT NOT NULL,
	[info_url] TEXT NOT NULL,
	[comment_url] TEXT NOT NULL,
	[date_scraped] TEXT NOT NULL,
	[date_received] TEXT
);`

// Store persists development application records to SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert adds the record unless one with the same application number
// already exists. It reports whether a row was written; a duplicate is
// not an error.
func (s *Store) Insert(r model.Record) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO [data] (
			[council_reference], [address], [description],
			[info_url], [comment_url], [date_scraped], [date_received]
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT([council_reference]) DO NOTHING`,
		r.ApplicationNumber, r.Address, r.Description,
		r.InformationURL, r.CommentURL, r.ScrapeDate, r.ReceivedDate,
	)
	if err != nil {
		return false, fmt.Errorf("insert %s: %w", r.ApplicationNumber, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
