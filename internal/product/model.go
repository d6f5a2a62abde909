package product

import "github.com/shopspring/decimal"

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"image"`
}

// CreateParams carries the raw creation input; Price stays a string until
// the service has validated it.
type CreateParams struct {
	Name        string
	Price       string
	Description string
	ImagePath   string
}
