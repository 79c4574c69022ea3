package paying

import "errors"

// Erros específicos para o contexto de pagamentos
var (
	ErrRequestNotFound       = errors.New("campaign request not found")
	ErrRequestNotApproved    = errors.New("payment only allowed for approved campaigns")
	ErrAmountMismatch        = errors.New("amount does not match the computed total")
	ErrDuplicateTransaction  = errors.New("gateway transaction already used by another campaign")
	ErrPaymentDeclined       = errors.New("payment declined by the gateway")
	ErrGatewayUnavailable    = errors.New("payment gateway unavailable")
	ErrTransactionIDRequired = errors.New("gateway transaction id is required")
)
