package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

var categoryCols = []string{"id", "name", "slug", "description", "created_at"}

func TestCategoryRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	now := time.Now()
	mock.ExpectQuery(q(`FROM categories ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow("c1", "Audio", "audio", nil, now).
			AddRow("c2", "Réseau", "reseau", "Switchs et routeurs", now))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "audio", categories[0].Slug)
	assert.Nil(t, categories[0].Description)
	require.NotNil(t, categories[1].Description)
	assert.Equal(t, "Switchs et routeurs", *categories[1].Description)
}

func TestCategoryRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(q(`FROM categories`)).WillReturnRows(sqlmock.NewRows(categoryCols))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestCategoryRepository_GetBySlugNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(q(`FROM categories WHERE slug = $1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(categoryCols))

	_, err := repo.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCategoryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	now := time.Now()
	mock.ExpectQuery(q(`INSERT INTO categories`)).
		WithArgs(sqlmock.AnyArg(), "Audio", "audio", nil).
		WillReturnRows(sqlmock.NewRows(categoryCols).AddRow("c1", "Audio", "audio", nil, now))

	c := &models.Category{Name: "Audio", Slug: "audio"}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, now, c.CreatedAt)
}

func TestCategoryRepository_CreateDuplicateSlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(q(`INSERT INTO categories`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "categories_slug_unique"})

	err := repo.Create(context.Background(), &models.Category{Name: "Audio", Slug: "audio"})

	var ce *utils.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "slug", ce.Field)
}

func TestCategoryRepository_UpdatePartial(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	name := "Audio & Vidéo"
	mock.ExpectQuery(q(`UPDATE categories SET name = $1 WHERE id = $2 RETURNING`)).
		WithArgs(name, "c1").
		WillReturnRows(sqlmock.NewRows(categoryCols).AddRow("c1", name, "audio", nil, time.Now()))

	c, err := repo.Update(context.Background(), "c1", &models.UpdateCategoryInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, c.Name)
	assert.Equal(t, "audio", c.Slug)
}

func TestCategoryRepository_UpdateClearsDescription(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(q(`UPDATE categories SET description = $1 WHERE id = $2 RETURNING`)).
		WithArgs(nil, "c1").
		WillReturnRows(sqlmock.NewRows(categoryCols).AddRow("c1", "Audio", "audio", nil, time.Now()))

	c, err := repo.Update(context.Background(), "c1", &models.UpdateCategoryInput{
		Description: models.NullString{Set: true},
	})
	require.NoError(t, err)
	assert.Nil(t, c.Description)
}

func TestCategoryRepository_UpdateEmptyReturnsCurrent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(q(`FROM categories WHERE id = $1`)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(categoryCols).AddRow("c1", "Audio", "audio", nil, time.Now()))

	c, err := repo.Update(context.Background(), "c1", &models.UpdateCategoryInput{})
	require.NoError(t, err)
	assert.Equal(t, "Audio", c.Name)
}

func TestCategoryRepository_UpdateUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	slug := "x"
	mock.ExpectQuery(q(`UPDATE categories`)).WillReturnRows(sqlmock.NewRows(categoryCols))

	_, err := repo.Update(context.Background(), "nope", &models.UpdateCategoryInput{Slug: &slug})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCategoryRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectExec(q(`DELETE FROM categories WHERE id = $1`)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(`DELETE FROM categories WHERE id = $1`)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, ok)
}
