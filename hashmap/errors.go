package hashmap

import "errors"

var (
	ErrNilTable          = errors.New("nil table")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrCapacityOverflow  = errors.New("capacity overflow")
	ErrClosed            = errors.New("table closed")
	ErrIteratorExhausted = errors.New("iterator exhausted")
	ErrNoCurrentEntry    = errors.New("iterator has no current entry")
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}
