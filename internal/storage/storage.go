// Package storage is the local payload cache: raw fetched series records,
// zstd-compressed, in a sqlite database. It stores fetch results only,
// never analyzer outputs.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the scout cache plus the payload codec.
type DB struct {
	conn    *sql.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("init zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("init zstd decoder: %w", err)
	}
	return &DB{conn: conn, encoder: encoder, decoder: decoder}, nil
}

// Close closes the underlying connection and codec.
func (db *DB) Close() error {
	db.encoder.Close()
	db.decoder.Close()
	return db.conn.Close()
}

func (db *DB) compress(data []byte) []byte {
	return db.encoder.EncodeAll(data, nil)
}

func (db *DB) decompress(data []byte) ([]byte, error) {
	return db.decoder.DecodeAll(data, nil)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
