package placing

import "errors"

// Erros específicos para o contexto de veiculação
var (
	ErrUnknownSurface         = errors.New("unknown placement surface")
	ErrUnknownInteractionKind = errors.New("unknown interaction kind")
	ErrNotServable            = errors.New("placement inactive or daily cap reached")
	ErrPlacementNotFound      = errors.New("placement not found")
)
