package identifying

import "errors"

// Erros de validação de token. A autenticação em si acontece em um serviço
// externo; aqui apenas verificamos tokens já emitidos.
var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrMissingRole  = errors.New("token sem papel de usuário")
)
