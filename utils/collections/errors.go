package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value already in set")
	ErrValueNotExisted = errors.New("value not in set")
)
