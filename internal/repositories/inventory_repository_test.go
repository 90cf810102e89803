package repositories

import (
	"database/sql"
	"testing"
	"time"

	"holdup_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func inventoryRows(id, productID, locationID int64, quantity int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "product_id", "location_id", "quantity", "created_at", "updated_at"}).
		AddRow(id, productID, locationID, quantity, now, now)
}

func TestGetQuantity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`SELECT quantity FROM inventory`).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(7))

	quantity, err := repo.GetQuantity(db, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuantity_NoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`SELECT quantity FROM inventory`).
		WithArgs(int64(1), int64(10)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetQuantity(db, 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustQuantity_UpsertsRelativeIncrement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`(?s)INSERT INTO inventory .+ON CONFLICT \(product_id, location_id\)`).
		WithArgs(int64(1), int64(10), -3, sqlmock.AnyArg()).
		WillReturnRows(inventoryRows(5, 1, 10, 4))

	inventory, err := repo.AdjustQuantity(db, 1, 10, -3)
	require.NoError(t, err)
	assert.Equal(t, 4, inventory.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementExisting_NoRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`UPDATE inventory SET quantity = quantity - `).
		WithArgs(int64(1), int64(10), 2, sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DecrementExisting(db, 1, 10, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMovement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryRepository(db)

	from := int64(10)
	to := int64(20)
	mock.ExpectQuery(`INSERT INTO stock_movements`).
		WithArgs(int64(1), &from, &to, 5, "Transfer", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(99)))

	movement := &models.StockMovement{
		ProductID:      1,
		FromLocationID: &from,
		ToLocationID:   &to,
		Quantity:       5,
		Reason:         "Transfer",
	}
	id, err := repo.CreateMovement(db, movement)
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
	assert.False(t, movement.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
