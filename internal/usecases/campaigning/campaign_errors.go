package campaigning

import "errors"

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação da submissão
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrVideoRequired        = errors.New("video required")
	ErrBudgetNotPositive    = errors.New("budget must be positive")
	ErrUnknownAdType        = errors.New("unknown ad type")

	// Erros de decisão e transição
	ErrReasonRequired  = errors.New("rejection reason required")
	ErrRequestNotFound = errors.New("campaign request not found")
	ErrInvalidState    = errors.New("operation not permitted in current state")
	ErrNotOwner        = errors.New("campaign belongs to another vendor")
)
