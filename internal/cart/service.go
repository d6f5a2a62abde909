package cart

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopvana-backend/internal/logger"
	"shopvana-backend/internal/product"
	"shopvana-backend/internal/session"
)

// Service defines the cart engine operations.
type Service interface {
	AddToCart(ctx context.Context, params AddParams) (*CartItem, error)
	RemoveFromCart(ctx context.Context, token string, cartItemID uint) error
	// ListItems returns the cart lines for a token. Unknown or malformed
	// tokens yield an empty slice, never an error.
	ListItems(ctx context.Context, token string) ([]Line, error)
}

type service struct {
	repo         Repository
	sessions     session.Repository
	products     product.Repository
	assetBaseURL string
}

func NewService(repo Repository, sessions session.Repository, products product.Repository, assetBaseURL string) Service {
	return &service{
		repo:         repo,
		sessions:     sessions,
		products:     products,
		assetBaseURL: assetBaseURL,
	}
}

// ParseQuantity coerces the raw JSON quantity value to a positive integer.
// A missing value defaults to 1; numeric strings are accepted.
func ParseQuantity(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 1, nil
	case float64:
		q := int(v)
		if q < 1 {
			return 0, ErrInvalidQuantity
		}
		return q, nil
	case string:
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 {
			return 0, ErrInvalidQuantity
		}
		return q, nil
	default:
		return 0, ErrInvalidQuantity
	}
}

// FlattenSelectedOptions turns the selected_options mapping (values are a
// single option id or a list of ids) into a deduplicated id slice.
func FlattenSelectedOptions(selected map[string]any) ([]uint, error) {
	ids := make([]uint, 0, len(selected))
	seen := make(map[uint]bool)

	appendID := func(value any) error {
		id, err := coerceOptionID(value)
		if err != nil {
			return err
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
		return nil
	}

	for _, value := range selected {
		if list, ok := value.([]any); ok {
			for _, entry := range list {
				if err := appendID(entry); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := appendID(value); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

func coerceOptionID(value any) (uint, error) {
	switch v := value.(type) {
	case float64:
		if v < 1 {
			return 0, ErrInvalidOptionRef
		}
		return uint(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id < 1 {
			return 0, ErrInvalidOptionRef
		}
		return uint(id), nil
	default:
		return 0, ErrInvalidOptionRef
	}
}

func (s *service) AddToCart(ctx context.Context, params AddParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.Uint("product_id", params.ProductID),
	)

	if !validToken(params.Token) {
		return nil, session.ErrTokenNotFound
	}
	user, err := s.sessions.GetByID(ctx, params.Token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, session.ErrTokenNotFound
	}

	p, err := s.products.GetByID(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repo.UpsertItem(ctx, UpsertParams{
		TemporaryUserID: user.ID,
		ProductID:       p.ID,
		Quantity:        params.Quantity,
		OptionIDs:       params.OptionIDs,
	})
	if err != nil {
		log.Error("add to cart failed", zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (s *service) RemoveFromCart(ctx context.Context, token string, cartItemID uint) error {
	if !validToken(token) {
		// A malformed token cannot own a cart item.
		return ErrCartItemNotFound
	}
	return s.repo.Remove(ctx, token, cartItemID)
}

func (s *service) ListItems(ctx context.Context, token string) ([]Line, error) {
	if !validToken(token) {
		return []Line{}, nil
	}

	rows, err := s.repo.GetRows(ctx, token)
	if err != nil {
		return nil, err
	}

	return mapRowsToLines(rows, s.assetBaseURL), nil
}

func validToken(token string) bool {
	_, err := uuid.Parse(token)
	return err == nil
}
