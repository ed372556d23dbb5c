package repositories_test

import (
	"fmt"
	"testing"

	"elektronik/internal/models"
	"elektronik/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newProductDB opens a fresh in-memory SQLite database with the product
// schema migrated.
func newProductDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func TestGORMProductRepository_Update(t *testing.T) {
	db := newProductDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := &models.Product{
		Name:     "Wireless Mouse M2",
		Brand:    "KeyForge",
		Category: "accessories",
		Price:    decimal.RequireFromString("25.00"),
		Stock:    10,
	}
	assert.NoError(t, repo.Create(product))

	product.Price = decimal.RequireFromString("22.50")
	product.Stock = 8
	assert.NoError(t, repo.Update(product))

	updated, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("22.50")))
	assert.Equal(t, 8, updated.Stock)
}

func TestGORMProductRepository_Update_UnknownID(t *testing.T) {
	db := newProductDB(t)
	repo := repositories.NewGORMProductRepository(db)

	seeded := &models.Product{
		Name:  "Wireless Mouse M2",
		Price: decimal.RequireFromString("25.00"),
		Stock: 10,
	}
	assert.NoError(t, repo.Create(seeded))

	// Updating an id that does not exist must report NotFound, not quietly
	// insert a new row the way a bare Save would.
	ghost := &models.Product{
		ID:    "no-such-id",
		Name:  "Phantom Keyboard",
		Price: decimal.RequireFromString("50.00"),
		Stock: 1,
	}
	err := repo.Update(ghost)
	var notFound *models.ProductNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	var count int64
	assert.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "a failed update must not create a row")

	_, err = repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
