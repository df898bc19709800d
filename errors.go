package duallist

import "github.com/pkg/errors"

var (
	ErrTypeConflict         = errors.New("first and second key types must differ")
	ErrLengthMismatch       = errors.New("first and second sequences differ in length")
	ErrDuplicatePair        = errors.New("duplicate pair")
	ErrDuplicatesIntroduced = errors.New("duplicate pairs introduced by range operation")
	ErrPairNotFound         = errors.New("pair not found")
	ErrNotFound             = errors.New("key not found")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrEmptyCollection      = errors.New("collection is empty")
	ErrInsufficientCapacity = errors.New("destination is not large enough")
	ErrInvalidConversion    = errors.New("element cannot be converted to target type")
)
