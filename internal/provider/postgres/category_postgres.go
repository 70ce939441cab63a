package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"catalogapi/internal/model"
	"catalogapi/internal/provider"
)

// CategoryPostgres is a PostgreSQL implementation of provider.CategoryProvider.
// It uses database/sql with parameterized queries and contains no business logic.
type CategoryPostgres struct {
	db *sql.DB
}

// NewCategoryPostgres creates a new CategoryPostgres provider.
func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ provider.CategoryProvider = (*CategoryPostgres)(nil)

// List returns categories ordered by ID using keyset pagination.
// A startAfter cursor restricts the result to IDs greater than the cursor;
// a positive pageSize caps the number of rows.
func (p *CategoryPostgres) List(ctx context.Context, pageSize int, startAfter string) ([]model.Category, error) {
	q := `SELECT id, name, description, icon_ref, created_at FROM categories`
	args := make([]any, 0, 2)
	if startAfter != "" {
		args = append(args, startAfter)
		q += fmt.Sprintf(" WHERE id > $%d", len(args))
	}
	q += " ORDER BY id"
	if pageSize > 0 {
		args = append(args, pageSize)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IconRef, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single category by its ID.
func (p *CategoryPostgres) Get(ctx context.Context, id string) (*model.Category, error) {
	const q = `
		SELECT id, name, description, icon_ref, created_at
		FROM categories
		WHERE id = $1
	`
	var c model.Category
	err := p.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Description, &c.IconRef, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &provider.NotFoundError{ID: id}
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category row and returns the stored record.
func (p *CategoryPostgres) Create(ctx context.Context, name, description, iconRef string) (*model.Category, error) {
	const q = `
		INSERT INTO categories (id, name, description, icon_ref)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, icon_ref, created_at
	`
	var c model.Category
	err := p.db.QueryRowContext(ctx, q, uuid.NewString(), name, description, iconRef).
		Scan(&c.ID, &c.Name, &c.Description, &c.IconRef, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces the mutable fields of the category identified by c.ID.
func (p *CategoryPostgres) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `
		UPDATE categories
		SET name = $2, description = $3, icon_ref = $4
		WHERE id = $1
		RETURNING id, name, description, icon_ref, created_at
	`
	var out model.Category
	err := p.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Description, c.IconRef).
		Scan(&out.ID, &out.Name, &out.Description, &out.IconRef, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &provider.NotFoundError{ID: c.ID}
		}
		return nil, err
	}
	return &out, nil
}

// Delete removes a category by ID. A missing row is reported as NotFoundError.
func (p *CategoryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM categories WHERE id = $1`
	res, err := p.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &provider.NotFoundError{ID: id}
	}
	return nil
}
