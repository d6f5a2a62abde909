package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ListEntry is the catalog listing payload shape.
type ListEntry struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

// ResolveImageURL turns a stored asset path into an absolute URL. Paths
// that already carry a scheme are returned as-is.
func ResolveImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func MapToListEntries(products []Product, baseURL string) []ListEntry {
	entries := make([]ListEntry, 0, len(products))

	for _, p := range products {
		entries = append(entries, ListEntry{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Image:       ResolveImageURL(baseURL, p.ImagePath),
		})
	}

	return entries
}
