package repository

import "errors"

// Erros sentinela devolvidos pelos repositórios. Os usecases traduzem estes
// erros para a taxonomia exposta na API.
var (
	// ErrNotFound indica que o registro não existe
	ErrNotFound = errors.New("registro não encontrado")

	// ErrStateMismatch indica que uma transição condicional não afetou
	// nenhuma linha porque o estado esperado não era mais o atual
	ErrStateMismatch = errors.New("estado atual não permite a transição")

	// ErrDuplicateTransaction indica violação de unicidade do
	// gateway_transaction_id
	ErrDuplicateTransaction = errors.New("transação do gateway já registrada")
)
