package identifying

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
)

const testSecret = "adboard-test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	assert.NoError(t, err)
	return token
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})

	vendorClaims := func() domain.Claims {
		return domain.Claims{
			UserID:   "VND001",
			UserName: "Loja do Arjun",
			UserRole: domain.RoleVendor,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name     string
		token    func() string
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name: "Token válido devolve as claims do ator",
			token: func() string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), vendorClaims())
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "VND001", claims.UserID)
				assert.Equal(t, domain.RoleVendor, claims.UserRole)
				assert.False(t, claims.IsAdmin())
			},
		},
		{
			name: "Token de admin carrega a capacidade administrativa",
			token: func() string {
				claims := vendorClaims()
				claims.UserID = "ADM001"
				claims.UserRole = domain.RoleAdmin
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.NoError(t, err)
				assert.True(t, claims.IsAdmin())
			},
		},
		{
			name: "Token expirado",
			token: func() string {
				claims := vendorClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrExpiredToken)
			},
		},
		{
			name: "Assinatura com outro segredo",
			token: func() string {
				return signToken(t, jwt.SigningMethodHS256, []byte("outro-segredo"), vendorClaims())
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name: "Algoritmo none é rejeitado",
			token: func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, vendorClaims()).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				assert.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name: "Token sem papel de usuário",
			token: func() string {
				claims := vendorClaims()
				claims.UserRole = ""
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrMissingRole)
			},
		},
		{
			name: "Lixo não é um token",
			token: func() string {
				return "not-a-jwt"
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token())

			tt.validate(t, claims, err)
		})
	}
}
