package lfu

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New].
	ErrInvalidCapacity = constError("invalid capacity")

	errInconsistent = constError("cache structure inconsistent")
)

func (errStr constError) Error() string { return string(errStr) }

func capacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was requested",
		ErrInvalidCapacity, capacity)
}

func inconsistency(format string, args ...any) error {
	return fmt.Errorf("%w: "+format,
		append([]any{errInconsistent}, args...)...)
}
