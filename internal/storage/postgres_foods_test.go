package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupFoodRepo(t *testing.T) (*FoodRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewFoodRepository(db), dbMock
}

func foodRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "names", "description", "descriptions", "category", "price", "is_there",
		"image_url", "ingredients", "allergens", "rating", "review_count", "preparation_time",
		"stock", "is_popular", "discount", "created_at", "updated_at",
	})
}

func TestFoodRepository_GetFoodMultilingual(t *testing.T) {
	repo, dbMock := setupFoodRepo(t)
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	rows := foodRows().AddRow(
		"food_1", "Osh", []byte(`{"uz":"Osh","ru":"Плов"}`), "Palov", nil, "milliy_taomlar",
		25000, true, "", []byte(`{"uz":["guruch","sabzi"]}`), nil, 4.5, 10, 30,
		40, false, 0, created, created,
	)
	dbMock.ExpectQuery("FROM foods WHERE id").
		WithArgs("food_1").
		WillReturnRows(rows)

	food, err := repo.GetFood("food_1")

	assert.NoError(t, err)
	assert.Equal(t, "Плов", food.Names["ru"])
	assert.Equal(t, []string{"guruch", "sabzi"}, food.Ingredients["uz"])
	assert.Equal(t, 40, food.Stock)
}

func TestFoodRepository_GetFoodNullColumnsStayNil(t *testing.T) {
	repo, dbMock := setupFoodRepo(t)
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	rows := foodRows().AddRow(
		"food_2", "Somsa", nil, "", nil, "milliy_taomlar",
		8000, true, "", nil, nil, 0.0, 0, 15,
		20, false, 0, created, created,
	)
	dbMock.ExpectQuery("FROM foods WHERE id").
		WithArgs("food_2").
		WillReturnRows(rows)

	food, err := repo.GetFood("food_2")

	assert.NoError(t, err)
	assert.Nil(t, food.Names, "legacy rows keep nil override maps")
	assert.Nil(t, food.Ingredients)
}

func TestFoodRepository_AdjustFoodStock(t *testing.T) {
	repo, dbMock := setupFoodRepo(t)

	dbMock.ExpectExec("UPDATE foods SET stock").
		WithArgs(-2, "food_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AdjustFoodStock("food_1", -2))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestFoodRepository_AdjustFoodStockMissing(t *testing.T) {
	repo, dbMock := setupFoodRepo(t)

	dbMock.ExpectExec("UPDATE foods SET stock").
		WithArgs(-2, "food_ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AdjustFoodStock("food_ghost", -2)

	assert.ErrorIs(t, err, sql.ErrNoRows)
}
