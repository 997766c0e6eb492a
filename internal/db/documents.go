package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Documents are stored as full JSONB blobs keyed by (collection, doc_id):
//
//	CREATE TABLE documents (
//	    collection TEXT NOT NULL,
//	    doc_id     TEXT NOT NULL,
//	    data       JSONB NOT NULL DEFAULT '{}'::jsonb,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (collection, doc_id)
//	);

// GetDocument retrieves a document's JSON data by collection and id.
// Returns nil (and a nil error) when the document does not exist.
func (db *DB) GetDocument(ctx context.Context, collection, id string) ([]byte, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND doc_id = $2`,
		collection, id,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	return data, nil
}

// UpdateDocument merges the given fields into an existing document's data.
// Top-level keys in fields overwrite the stored values; last write wins and
// there is no concurrency check.
func (db *DB) UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal document fields: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3::jsonb, updated_at = NOW()
		 WHERE collection = $1 AND doc_id = $2`,
		collection, id, patch,
	)
	if err != nil {
		return fmt.Errorf("failed to update document %s/%s: %w", collection, id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s/%s", collection, id)
	}
	return nil
}

// PutDocument stores a full document, replacing any existing data.
func (db *DB) PutDocument(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO documents (collection, doc_id, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (collection, doc_id) DO UPDATE SET data = $3, updated_at = NOW()`,
		collection, id, data,
	)
	if err != nil {
		return fmt.Errorf("failed to put document %s/%s: %w", collection, id, err)
	}
	return nil
}
