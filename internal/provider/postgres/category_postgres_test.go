package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"catalogapi/internal/model"
	"catalogapi/internal/provider"
)

func categoryRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "description", "icon_ref", "created_at"})
	for _, id := range ids {
		rows.AddRow(id, "Name "+id, "", "", time.Now())
	}
	return rows
}

func TestCategoryPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	prov := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("unbounded", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories ORDER BY id$`).
			WillReturnRows(categoryRows("cat-0", "cat-1"))

		items, err := prov.List(ctx, 0, "")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("with page size", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories ORDER BY id LIMIT`).
			WithArgs(2).
			WillReturnRows(categoryRows("cat-0", "cat-1"))

		items, err := prov.List(ctx, 2, "")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("with cursor and page size", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories WHERE id > (.+) ORDER BY id LIMIT`).
			WithArgs("cat-1", 2).
			WillReturnRows(categoryRows("cat-2"))

		items, err := prov.List(ctx, 2, "cat-1")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "cat-2", items[0].ID)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories ORDER BY id$`).
			WillReturnRows(categoryRows())

		items, err := prov.List(ctx, 0, "")

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryPostgres_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	prov := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories WHERE id = ?`).
			WithArgs("test-id").
			WillReturnRows(categoryRows("test-id"))

		c, err := prov.Get(ctx, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "test-id", c.ID)
	})

	t.Run("missing row becomes NotFoundError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories WHERE id = ?`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		c, err := prov.Get(ctx, "missing")

		assert.Nil(t, c)
		assert.True(t, provider.IsNotFound(err))

		var nf *provider.NotFoundError
		assert.ErrorAs(t, err, &nf)
		assert.Equal(t, "missing", nf.ID)
	})

	t.Run("other errors untouched", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM categories WHERE id = ?`).
			WithArgs("test-id").
			WillReturnError(errors.New("db fail"))

		_, err := prov.Get(ctx, "test-id")

		assert.Error(t, err)
		assert.False(t, provider.IsNotFound(err))
	})
}

func TestCategoryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	prov := NewCategoryPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "icon_ref", "created_at"}).
		AddRow("gen-id", "Books", "printed things", "icons/book.png", now)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(sqlmock.AnyArg(), "Books", "printed things", "icons/book.png").
		WillReturnRows(rows)

	c, err := prov.Create(ctx, "Books", "printed things", "icons/book.png")

	assert.NoError(t, err)
	assert.Equal(t, &model.Category{
		ID:          "gen-id",
		Name:        "Books",
		Description: "printed things",
		IconRef:     "icons/book.png",
		CreatedAt:   now,
	}, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	prov := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "icon_ref", "created_at"}).
			AddRow("test-id", "Renamed", "", "", time.Now())

		mock.ExpectQuery("UPDATE categories SET").
			WithArgs("test-id", "Renamed", "", "").
			WillReturnRows(rows)

		c, err := prov.Update(ctx, &model.Category{ID: "test-id", Name: "Renamed"})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", c.Name)
	})

	t.Run("missing row becomes NotFoundError", func(t *testing.T) {
		mock.ExpectQuery("UPDATE categories SET").
			WithArgs("missing", "Renamed", "", "").
			WillReturnError(sql.ErrNoRows)

		c, err := prov.Update(ctx, &model.Category{ID: "missing", Name: "Renamed"})

		assert.Nil(t, c)
		assert.True(t, provider.IsNotFound(err))
	})
}

func TestCategoryPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	prov := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories WHERE id = ?").
			WithArgs("test-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, prov.Delete(ctx, "test-id"))
	})

	t.Run("zero rows affected becomes NotFoundError", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := prov.Delete(ctx, "missing")

		assert.True(t, provider.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
