package enumcache

import (
	"errors"
	"fmt"
)

var (
	// Argument errors
	ErrNullArgument = errors.New("member is nil")

	// Type errors
	ErrInvalidType   = errors.New("invalid enum type")
	ErrNotAnEnumType = fmt.Errorf("%w: not a named integer type", ErrInvalidType)

	// Declaration errors
	ErrDuplicateType   = errors.New("enum type already declared")
	ErrDuplicateMember = errors.New("enum member declared twice")

	// Configuration errors
	ErrUnknownCachingMethod = errors.New("unknown caching method")
	ErrNilSource            = errors.New("annotation source is nil")
)
