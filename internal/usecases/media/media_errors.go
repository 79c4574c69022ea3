package media

import "errors"

// Erros específicos para o contexto de mídia
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMediaTooLarge        = errors.New("media exceeds the size limit")
	ErrEmptyFile            = errors.New("file is empty")
	ErrStorageUnavailable   = errors.New("storage service unavailable")
)
