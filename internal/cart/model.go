package cart

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is the unique record per (temporary user, product) pair.
type CartItem struct {
	ID              uint      `json:"id"`
	TemporaryUserID string    `json:"temporary_user_id"`
	ProductID       uint      `json:"product_id"`
	Quantity        int       `json:"quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AddParams struct {
	Token     string
	ProductID uint
	Quantity  int
	OptionIDs []uint
}

type UpsertParams struct {
	TemporaryUserID string
	ProductID       uint
	Quantity        int
	OptionIDs       []uint
}

// cartRow is one row of the joined listing query; the option columns are
// null for items with no options.
type cartRow struct {
	ItemID      uint
	ProductName string
	ImagePath   string
	Quantity    int
	Price       decimal.Decimal
	OptionID    sql.NullInt64
	OptionName  sql.NullString
	Surcharge   decimal.NullDecimal
}

// Line is the per-item payload of the cart listing.
type Line struct {
	ID       uint            `json:"id"`
	Product  string          `json:"product"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Options  []LineOption    `json:"options"`
}

type LineOption struct {
	Name      string              `json:"name"`
	ID        uint                `json:"id"`
	Surcharge decimal.NullDecimal `json:"surcharge"`
}
