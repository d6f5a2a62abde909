package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0b184c99-6ce0-43b6-8f1e-2f72e4a7f001"

func upsertRows(quantity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "temporary_user_id", "product_id", "quantity", "created_at", "updated_at",
	}).AddRow(5, testToken, 1, quantity, time.Now(), time.Now())
}

func TestRepository_UpsertItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	params := UpsertParams{
		TemporaryUserID: testToken,
		ProductID:       1,
		Quantity:        2,
		OptionIDs:       []uint{10, 11},
	}

	t.Run("Success with options", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(testToken, 1, 2).
			WillReturnRows(upsertRows(2))
		mock.ExpectExec("DELETE FROM cart_item_options").
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO cart_item_options").
			WithArgs(5, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO cart_item_options").
			WithArgs(5, 11).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		item, err := repo.UpsertItem(context.Background(), params)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, uint(5), item.ID)
		assert.Equal(t, 2, item.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty option set clears previous options", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(testToken, 1, 2).
			WillReturnRows(upsertRows(2))
		mock.ExpectExec("DELETE FROM cart_item_options").
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		none := params
		none.OptionIDs = nil
		item, err := repo.UpsertItem(context.Background(), none)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown option rolls back whole write", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(testToken, 1, 2).
			WillReturnRows(upsertRows(2))
		mock.ExpectExec("DELETE FROM cart_item_options").
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO cart_item_options").
			WithArgs(5, 10).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.UpsertItem(context.Background(), params)
		assert.ErrorIs(t, err, ErrOptionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Foreign key violation maps to reference gone", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO cart_items").
			WillReturnError(&pq.Error{Code: "23503"})
		mock.ExpectRollback()

		_, err := repo.UpsertItem(context.Background(), params)
		assert.ErrorIs(t, err, ErrReferenceGone)
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))

		_, err := repo.UpsertItem(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestRepository_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(5, testToken).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Remove(context.Background(), testToken, 5)
		assert.NoError(t, err)
	})

	t.Run("Wrong owner or missing id", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(5, testToken).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(context.Background(), testToken, 5)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WillReturnError(errors.New("db error"))

		err := repo.Remove(context.Background(), testToken, 5)
		assert.Error(t, err)
	})
}

func TestRepository_GetRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	columns := []string{
		"id", "name", "image_path", "quantity", "price",
		"opt_id", "opt_name", "surcharge",
	}

	t.Run("Items with and without options", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(testToken).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(5, "Margherita", "images/a.png", 2, "10.99", 10, "Large", "2.50").
				AddRow(5, "Margherita", "images/a.png", 2, "10.99", 11, "Olives", nil).
				AddRow(6, "Pepperoni", "images/b.png", 1, "12.50", nil, nil, nil))

		rows, err := repo.GetRows(context.Background(), testToken)
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.True(t, rows[0].OptionID.Valid)
		assert.False(t, rows[2].OptionID.Valid)
	})

	t.Run("Empty cart", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(testToken).
			WillReturnRows(sqlmock.NewRows(columns))

		rows, err := repo.GetRows(context.Background(), testToken)
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetRows(context.Background(), testToken)
		assert.Error(t, err)
	})
}
