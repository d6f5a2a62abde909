package product

import (
	"context"
	"database/sql"
)

type Repository interface {
	Create(ctx context.Context, p Product) (*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, image_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.Name, p.Description, p.Price, p.ImagePath).Scan(&p.ID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	p := &Product{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_path
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImagePath)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, image_path
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImagePath); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
