package option

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopvana-backend/internal/logger"
)

type Service interface {
	CreateList(ctx context.Context, name, selectionType string) (*OptionList, error)
	CreateOption(ctx context.Context, params CreateOptionParams) (*Option, error)
	ListGrouped(ctx context.Context) ([]GroupedList, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateList(ctx context.Context, name, selectionType string) (*OptionList, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOptionList"),
	)

	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if selectionType != SelectionSingle && selectionType != SelectionMultiple {
		return nil, ErrInvalidSelectionType
	}

	list, err := s.repo.CreateList(ctx, OptionList{
		Name:          name,
		SelectionType: selectionType,
	})
	if err != nil {
		log.Error("failed to create option list", zap.Error(err))
		return nil, err
	}

	log.Info("option list created",
		zap.Uint("option_list_id", list.ID),
		zap.String("selection_type", list.SelectionType),
	)

	return list, nil
}

func (s *service) CreateOption(ctx context.Context, params CreateOptionParams) (*Option, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOption"),
		zap.Uint("option_list_id", params.OptionListID),
	)

	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}

	list, err := s.repo.GetListByID(ctx, params.OptionListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrOptionListNotFound
	}

	var surcharge decimal.NullDecimal
	if params.Surcharge != "" {
		d, err := decimal.NewFromString(params.Surcharge)
		if err != nil {
			return nil, ErrInvalidSurcharge
		}
		surcharge = decimal.NewNullDecimal(d)
	}

	opt, err := s.repo.CreateOption(ctx, Option{
		Name:         params.Name,
		Surcharge:    surcharge,
		OptionListID: list.ID,
	})
	if err != nil {
		log.Error("failed to create option", zap.Error(err))
		return nil, err
	}

	log.Info("option created", zap.Uint("option_id", opt.ID))
	return opt, nil
}

func (s *service) ListGrouped(ctx context.Context) ([]GroupedList, error) {
	return s.repo.GetAllGrouped(ctx)
}
