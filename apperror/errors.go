// Package apperror defines the error taxonomy of the ranking pipeline:
// InvalidQuery, NotFound, EmptyFilter, StorageFailure and Internal,
// built the way the surrounding service's pkg/errors package builds its
// AppError: a single wrapping type keyed by a stable Kind, with
// errors.Is/As-friendly Unwrap and a constructor per kind.
package apperror

import "fmt"

// Kind categorizes an Error the way the outer service's error codes do.
type Kind string

const (
	// InvalidQuery marks malformed input: a bad token, an invalid date, an
	// unknown ranking rule name, an unknown filter field. Recoverable;
	// surfaced to the caller with the offending Field.
	InvalidQuery Kind = "INVALID_QUERY"

	// NotFound marks a requested entity that does not exist.
	NotFound Kind = "NOT_FOUND"

	// EmptyFilter marks a delete/cancel-style request with no
	// discriminating predicate; refused before any work happens.
	EmptyFilter Kind = "EMPTY_FILTER"

	// StorageFailure marks a failed read against the underlying index.
	// Fatal for the current search; never silently downgraded.
	StorageFailure Kind = "STORAGE_FAILURE"

	// Internal marks a programming-error invariant violation (a
	// tombstoned node encountered during traversal, a blob decoded to the
	// wrong tuple, ...). Treated as a bug; never recovered from.
	Internal Kind = "INTERNAL"
)

// Error is the pipeline's single error type. Field names the offending
// input when applicable (a query token, a filter field, a document id);
// it is empty when not meaningful for Kind.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Field != "":
		return fmt.Sprintf("%s[%s]: %s: %v", e.Kind, e.Field, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s[%s]: %s", e.Kind, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap allows errors.Is and errors.As to reach the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidQueryf builds an InvalidQuery error naming the offending field.
func InvalidQueryf(field, format string, args ...any) error {
	return &Error{Kind: InvalidQuery, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error naming the missing identifier.
func NotFoundf(field, format string, args ...any) error {
	return &Error{Kind: NotFound, Field: field, Message: fmt.Sprintf(format, args...)}
}

// ErrEmptyFilter is returned when a destructive operation carries no
// discriminating predicate.
var ErrEmptyFilter = &Error{Kind: EmptyFilter, Message: "no discriminating predicate supplied"}

// StorageFailuref wraps an underlying storage read error.
func StorageFailuref(err error, format string, args ...any) error {
	return &Error{Kind: StorageFailure, Message: fmt.Sprintf(format, args...), Err: err}
}

// Internalf marks an invariant violation as a generic internal bug. The
// message never leaks internal detail beyond what's passed explicitly.
func Internalf(format string, args ...any) error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
