package session

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context) (*TemporaryUser, error)
	GetByID(ctx context.Context, id string) (*TemporaryUser, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context) (*TemporaryUser, error) {
	u := &TemporaryUser{}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO temporary_users (id)
		VALUES ($1)
		RETURNING id, created_at
	`, uuid.New().String()).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*TemporaryUser, error) {
	u := &TemporaryUser{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, created_at
		FROM temporary_users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}
