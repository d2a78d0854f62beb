package auth

import (
	"context"

	"backoffice-service/internal/domain"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.User, error)
}

var _ TokenVerifier = (*JWTVerifier)(nil)
