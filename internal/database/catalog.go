package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"medcoder/internal/domain"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS code_catalog (
	category    TEXT NOT NULL,
	code        TEXT NOT NULL,
	code_type   TEXT NOT NULL,
	description TEXT NOT NULL,
	confidence  REAL NOT NULL,
	PRIMARY KEY (category, code, code_type)
);
`

// catalogRow mirrors one code_catalog row.
type catalogRow struct {
	Category    string  `db:"category"`
	Code        string  `db:"code"`
	CodeType    string  `db:"code_type"`
	Description string  `db:"description"`
	Confidence  float64 `db:"confidence"`
}

// CatalogRepository reads and seeds the code catalog table.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a catalog repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// EnsureSchema creates the catalog table if it does not exist.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, catalogSchema); err != nil {
		return fmt.Errorf("create code_catalog schema: %w", err)
	}
	return nil
}

// Seed inserts the given candidate tables, skipping rows already present.
func (r *CatalogRepository) Seed(ctx context.Context, entries map[domain.Category][]domain.CodePrediction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
		INSERT INTO code_catalog (category, code, code_type, description, confidence)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (category, code, code_type) DO NOTHING`

	stmt := tx.Rebind(insert)
	for category, codes := range entries {
		for _, c := range codes {
			if _, err := tx.ExecContext(ctx, stmt,
				string(category), c.Code, string(c.Type), c.Description, c.Confidence); err != nil {
				return fmt.Errorf("seed catalog row %s/%s: %w", category, c.Code, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

// ListEntries loads all catalog rows grouped by category. Rows with an
// unknown category or invalid code fields are rejected.
func (r *CatalogRepository) ListEntries(ctx context.Context) (map[domain.Category][]domain.CodePrediction, error) {
	var rows []catalogRow
	query := r.db.Rebind(`
		SELECT category, code, code_type, description, confidence
		FROM code_catalog
		ORDER BY category, code_type, code`)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}

	entries := make(map[domain.Category][]domain.CodePrediction)
	for _, row := range rows {
		category := domain.Category(row.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("catalog row %q: unknown category %q", row.Code, row.Category)
		}
		p := domain.CodePrediction{
			Code:        row.Code,
			Type:        domain.CodeType(row.CodeType),
			Description: row.Description,
			Confidence:  row.Confidence,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog row %q: %w", row.Code, err)
		}
		entries[category] = append(entries[category], p)
	}
	return entries, nil
}
