package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopvana-backend/internal/logger"
)

type Service interface {
	Create(ctx context.Context, params CreateParams) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.ImagePath == "" {
		return nil, ErrImageRequired
	}

	price, err := decimal.NewFromString(params.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.Create(ctx, Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       price,
		ImagePath:   params.ImagePath,
	})
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name),
	)

	return p, nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}
