package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"shopvana-backend/internal/logger"
)

type Repository interface {
	// UpsertItem creates or overwrites the cart item for the
	// (temporary user, product) pair and replaces its option set, all in
	// one transaction. A missing option id rolls the whole write back.
	UpsertItem(ctx context.Context, params UpsertParams) (*CartItem, error)
	Remove(ctx context.Context, temporaryUserID string, cartItemID uint) error
	GetRows(ctx context.Context, temporaryUserID string) ([]cartRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UpsertItem(ctx context.Context, params UpsertParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertItem"),
		zap.String("temporary_user_id", params.TemporaryUserID),
		zap.Uint("product_id", params.ProductID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The unique pair constraint makes concurrent first inserts converge
	// on one row; last writer wins on quantity.
	item := &CartItem{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO cart_items (temporary_user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (temporary_user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, temporary_user_id, product_id, quantity, created_at, updated_at
	`, params.TemporaryUserID, params.ProductID, params.Quantity).Scan(
		&item.ID,
		&item.TemporaryUserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if isFKViolation(err) {
			return nil, ErrReferenceGone
		}
		log.Error("failed to upsert cart item", zap.Error(err))
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM cart_item_options
		WHERE cart_item_id = $1
	`, item.ID)
	if err != nil {
		return nil, err
	}

	for _, optionID := range params.OptionIDs {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO cart_item_options (cart_item_id, option_id)
			SELECT $1, id FROM options WHERE id = $2
		`, item.ID, optionID)
		if err != nil {
			return nil, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			log.Warn("unknown option id, rolling back",
				zap.Uint("option_id", optionID),
			)
			return nil, ErrOptionNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("cart item upserted",
		zap.Uint("cart_item_id", item.ID),
		zap.Int("quantity", item.Quantity),
		zap.Int("options", len(params.OptionIDs)),
	)

	return item, nil
}

func (r *repository) Remove(ctx context.Context, temporaryUserID string, cartItemID uint) error {
	// Scoping the delete by owner keeps one session from removing another
	// session's item by guessing its id.
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND temporary_user_id = $2
	`, cartItemID, temporaryUserID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (r *repository) GetRows(ctx context.Context, temporaryUserID string) ([]cartRow, error) {
	// One query for items and options so a reader can never observe a
	// half-replaced option set.
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			c.id,
			p.name,
			p.image_path,
			c.quantity,
			p.price,
			o.id,
			o.name,
			o.surcharge
		FROM cart_items c
		JOIN products p ON c.product_id = p.id
		LEFT JOIN cart_item_options cio ON cio.cart_item_id = c.id
		LEFT JOIN options o ON o.id = cio.option_id
		WHERE c.temporary_user_id = $1
		ORDER BY c.id, o.id
	`, temporaryUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]cartRow, 0)
	for rows.Next() {
		var row cartRow
		if err := rows.Scan(
			&row.ItemID,
			&row.ProductName,
			&row.ImagePath,
			&row.Quantity,
			&row.Price,
			&row.OptionID,
			&row.OptionName,
			&row.Surcharge,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func isFKViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgFKViolation
}
