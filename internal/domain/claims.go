package domain

import "github.com/golang-jwt/jwt/v5"

// Role é a capacidade do ator autenticado. A autenticação em si é feita por
// um serviço externo; o core apenas valida o token e lê o papel.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
	RoleUser   Role = "user"
)

// Claims são as informações do ator extraídas do token JWT emitido pelo
// serviço de identidade
type Claims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	UserRole Role   `json:"user_role"`
	jwt.RegisteredClaims
}

// IsAdmin verifica a capacidade administrativa do ator
func (c *Claims) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}
