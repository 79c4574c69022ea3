package pricing

import "errors"

// Erros específicos para o contexto de tarifas
var (
	ErrPriceNotANumber = errors.New("price must be a finite number")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrPriceAboveLimit = errors.New("price exceeds the configured ceiling")
	ErrTariffNotFound  = errors.New("tariff not found")
	ErrReasonRequired  = errors.New("price change reason is required")
	ErrUnknownAdType   = errors.New("unknown ad type")
)
