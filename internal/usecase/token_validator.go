package usecase

import (
	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, rate.UserGroup, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, rate.UserGroup, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	group, err := rate.NewUserGroup(claims.UserGroup)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, group, nil
}
