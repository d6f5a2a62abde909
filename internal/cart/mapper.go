package cart

import "shopvana-backend/internal/product"

// mapRowsToLines folds the joined listing rows into one Line per cart
// item. Rows arrive ordered by item id, option rows after their item.
func mapRowsToLines(rows []cartRow, assetBaseURL string) []Line {
	lines := make([]Line, 0)

	for _, r := range rows {
		if len(lines) == 0 || lines[len(lines)-1].ID != r.ItemID {
			lines = append(lines, Line{
				ID:       r.ItemID,
				Product:  r.ProductName,
				Image:    product.ResolveImageURL(assetBaseURL, r.ImagePath),
				Quantity: r.Quantity,
				Price:    r.Price,
				Options:  make([]LineOption, 0),
			})
		}

		if r.OptionID.Valid {
			line := &lines[len(lines)-1]
			line.Options = append(line.Options, LineOption{
				Name:      r.OptionName.String,
				ID:        uint(r.OptionID.Int64),
				Surcharge: r.Surcharge,
			})
		}
	}

	return lines
}
