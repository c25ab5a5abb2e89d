package Trees

import (
	"errors"
	"fmt"
)

// ErrMissingKey is matched by every *MissingKeyError through errors.Is.
var ErrMissingKey = errors.New("Trees: key is not in the tree")

// MissingKeyError is returned when removing a key that isn't in the tree.
type MissingKeyError[T any] struct {
	Key T
}

func (e *MissingKeyError[T]) Error() string {
	return fmt.Sprintf("Trees: key %v is not in the tree", e.Key)
}

func (e *MissingKeyError[T]) Is(target error) bool {
	return target == ErrMissingKey
}
