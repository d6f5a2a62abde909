package option

import "github.com/shopspring/decimal"

// Selection cardinality of an option list. Stored with the list and
// reported to clients; attachment itself does not enforce it.
const (
	SelectionSingle   = "SINGLE"
	SelectionMultiple = "MULTIPLE"
)

type OptionList struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	SelectionType string `json:"selection_type"`
}

type Option struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Surcharge    decimal.NullDecimal `json:"surcharge"`
	OptionListID uint                `json:"option_list"`
}

// CreateOptionParams carries raw option input; Surcharge stays a string
// until validated.
type CreateOptionParams struct {
	Name         string
	Surcharge    string
	OptionListID uint
}

// GroupedList is one entry of the grouped options listing.
type GroupedList struct {
	OptionListID  uint          `json:"option_list_id"`
	OptionList    string        `json:"option_list"`
	Options       []GroupedItem `json:"options"`
	SelectionType string        `json:"selection_type"`
}

type GroupedItem struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	Surcharge decimal.NullDecimal `json:"surcharge"`
}
