package format

import "errors"

var ErrInvalidDate = errors.New("format: invalid date")
