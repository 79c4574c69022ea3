package notifying

import "errors"

// Erros específicos para o contexto de notificações
var (
	ErrVendorIDRequired     = errors.New("vendor ID is required")
	ErrTitleRequired        = errors.New("notification title is required")
	ErrUnknownType          = errors.New("unknown notification type")
	ErrNotificationNotFound = errors.New("notification not found")
)
