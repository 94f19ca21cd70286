package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/storecrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ storecrawl.RecordSink = (*RecordService)(nil)

// RecordService stores crawled product records in SQLite. Each Store call
// replaces the full record set: a crawl run is a snapshot of the catalog,
// not an incremental update.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// Store replaces all stored records with the given set in one transaction.
// Position preserves crawl order.
func (s *RecordService) Store(ctx context.Context, records []*storecrawl.ProductRecord) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, rec := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, source_url, name, price, description, rating, category, availability, image_url, position, crawled_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), rec.SourceURL, rec.Name, rec.Price, rec.Description,
			rec.Rating, rec.Category, rec.Availability, rec.ImageURL, i, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves stored records in crawl order.
func (s *RecordService) FindRecords(ctx context.Context) ([]*storecrawl.ProductRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source_url, name, price, description, rating, category, availability, image_url
		FROM products
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*storecrawl.ProductRecord
	for rows.Next() {
		var rec storecrawl.ProductRecord
		if err := rows.Scan(&rec.SourceURL, &rec.Name, &rec.Price, &rec.Description,
			&rec.Rating, &rec.Category, &rec.Availability, &rec.ImageURL); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
