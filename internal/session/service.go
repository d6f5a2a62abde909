package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopvana-backend/internal/logger"
)

// Service issues and resolves temporary user tokens.
type Service interface {
	// GetOrCreateToken returns the caller's token unchanged when it still
	// resolves to a temporary user, and mints a fresh one otherwise.
	GetOrCreateToken(ctx context.Context, existing string) (string, error)
	// Resolve maps a token to its temporary user, ErrTokenNotFound if the
	// token is unknown or malformed.
	Resolve(ctx context.Context, token string) (*TemporaryUser, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOrCreateToken(ctx context.Context, existing string) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetOrCreateToken"),
	)

	if existing != "" {
		// A malformed token is treated like an unknown one: mint a new
		// session instead of failing the call.
		if _, err := uuid.Parse(existing); err == nil {
			u, err := s.repo.GetByID(ctx, existing)
			if err != nil {
				return "", err
			}
			if u != nil {
				return u.ID, nil
			}
		}
	}

	u, err := s.repo.Create(ctx)
	if err != nil {
		log.Error("failed to mint temporary user", zap.Error(err))
		return "", err
	}

	log.Info("minted temporary user", zap.String("temporary_user_id", u.ID))
	return u.ID, nil
}

func (s *service) Resolve(ctx context.Context, token string) (*TemporaryUser, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrTokenNotFound
	}

	u, err := s.repo.GetByID(ctx, token)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrTokenNotFound
	}

	return u, nil
}
