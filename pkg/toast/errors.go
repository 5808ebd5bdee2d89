package toast

import "errors"

var (
	ErrInvalidKind   = errors.New("toast: invalid kind")
	ErrTitleRequired = errors.New("toast: title is required")
	ErrStoreClosed   = errors.New("toast: store is closed")
)
