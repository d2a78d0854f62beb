package auth

import (
	"context"
	"errors"
	"fmt"

	"backoffice-service/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// JWTVerifier checks the bearer token the storefront's auth service issued
// (HS256, shared secret) and resolves the caller to a usuarios row. A token
// whose user no longer exists is treated the same as a bad signature.
type JWTVerifier struct {
	secret []byte
	db     *gorm.DB
}

func NewJWTVerifier(secret string, db *gorm.DB) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), db: db}
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (*domain.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.UserID == 0 {
		return nil, ErrInvalidToken
	}

	var user domain.User
	if err := v.db.WithContext(ctx).First(&user, "ID_usuario = ?", c.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &user, nil
}
