package domain

import (
	"errors"
	"fmt"
)

// ErrInvariant - нарушение порядка конвейера или контракта намерений.
// Такие ошибки прерывают тик и не должны проглатываться.
var ErrInvariant = errors.New("invariant violation")

// Invariantf оборачивает сообщение в ErrInvariant
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
