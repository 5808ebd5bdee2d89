package catalog

import "errors"

var (
	ErrUnknownOptionType   = errors.New("catalog: unknown option type")
	ErrUnknownOption       = errors.New("catalog: unknown option")
	ErrIncompleteSelection = errors.New("catalog: option type has no selection")
)
