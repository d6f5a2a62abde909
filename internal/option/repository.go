package option

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateList(ctx context.Context, list OptionList) (*OptionList, error)
	GetListByID(ctx context.Context, id uint) (*OptionList, error)
	CreateOption(ctx context.Context, opt Option) (*Option, error)
	GetAllGrouped(ctx context.Context) ([]GroupedList, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateList(ctx context.Context, list OptionList) (*OptionList, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO option_lists (name, selection_type)
		VALUES ($1, $2)
		RETURNING id
	`, list.Name, list.SelectionType).Scan(&list.ID)
	if err != nil {
		return nil, err
	}

	return &list, nil
}

func (r *repository) GetListByID(ctx context.Context, id uint) (*OptionList, error) {
	list := &OptionList{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, selection_type
		FROM option_lists
		WHERE id = $1
	`, id).Scan(&list.ID, &list.Name, &list.SelectionType)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *repository) CreateOption(ctx context.Context, opt Option) (*Option, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO options (name, surcharge, option_list_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, opt.Name, opt.Surcharge, opt.OptionListID).Scan(&opt.ID)
	if err != nil {
		return nil, err
	}

	return &opt, nil
}

func (r *repository) GetAllGrouped(ctx context.Context) ([]GroupedList, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			l.id,
			l.name,
			l.selection_type,
			o.id,
			o.name,
			o.surcharge
		FROM option_lists l
		LEFT JOIN options o ON o.option_list_id = l.id
		ORDER BY l.id, o.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make([]GroupedList, 0)

	for rows.Next() {
		var (
			listID        uint
			listName      string
			selectionType string
			item          GroupedItem
			optID         sql.NullInt64
			optName       sql.NullString
		)

		if err := rows.Scan(
			&listID,
			&listName,
			&selectionType,
			&optID,
			&optName,
			&item.Surcharge,
		); err != nil {
			return nil, err
		}

		if len(grouped) == 0 || grouped[len(grouped)-1].OptionListID != listID {
			grouped = append(grouped, GroupedList{
				OptionListID:  listID,
				OptionList:    listName,
				SelectionType: selectionType,
				Options:       make([]GroupedItem, 0),
			})
		}

		// LEFT JOIN emits one null-option row for lists with no options.
		if optID.Valid {
			item.ID = uint(optID.Int64)
			item.Name = optName.String
			last := &grouped[len(grouped)-1]
			last.Options = append(last.Options, item)
		}
	}

	return grouped, rows.Err()
}
