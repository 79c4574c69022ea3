// Package identifying valida os tokens emitidos pelo serviço de identidade
// externo e expõe as claims do ator para o restante da aplicação
package identifying

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
)

// Verifier valida um token de acesso e devolve as claims do ator
type Verifier interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) *Service {
	return &Service{secret: []byte(cfg.Auth.Secret)}
}

// ValidateToken verifica assinatura e expiração do token JWT
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserRole == "" {
		return nil, ErrMissingRole
	}

	return claims, nil
}
