package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shopping list domain. Use errors.Is() to check these;
// every error returned by the application services wraps exactly one kind.
var (
	// ErrValidation indicates malformed input (empty name, bad quantity, ...).
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication indicates no caller identity could be resolved.
	ErrAuthentication = errors.New("authentication required")

	// ErrAuthorization indicates the caller lacks permission on the target list.
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound is wrapped by every "record absent" error below.
	ErrNotFound = errors.New("not found")

	// ErrCapacity indicates the membership limit would be exceeded.
	ErrCapacity = errors.New("membership limit exceeded")

	// ErrConflict indicates a conditional write lost a race with another writer.
	ErrConflict = errors.New("concurrent modification")

	// ErrUploadURL indicates the receipt upload credential could not be issued or recorded.
	ErrUploadURL = errors.New("failed to generate receipt upload url")

	// ErrDependency indicates the store or another backing service failed.
	ErrDependency = errors.New("dependency unavailable")
)

var (
	ErrListNotFound    = fmt.Errorf("list %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrReceiptNotFound = fmt.Errorf("receipt %w", ErrNotFound)

	// ErrCannotRemoveCreator is returned when removing the creator from a list's
	// members. Delete the list instead.
	ErrCannotRemoveCreator = fmt.Errorf("%w: the list creator cannot be removed", ErrValidation)
)

// Kind names reported in {"kind": ..., "message": ...} error bodies.
const (
	KindValidation     = "validation"
	KindAuthentication = "authentication"
	KindAuthorization  = "authorization"
	KindNotFound       = "not_found"
	KindCapacity       = "capacity"
	KindConflict       = "conflict"
	KindUploadURL      = "upload_url"
	KindDependency     = "dependency"
	KindInternal       = "internal"
)

// Kind classifies err into one of the Kind* names. Unknown errors are internal.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrAuthentication):
		return KindAuthentication
	case errors.Is(err, ErrAuthorization):
		return KindAuthorization
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrCapacity):
		return KindCapacity
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUploadURL):
		return KindUploadURL
	case errors.Is(err, ErrDependency):
		return KindDependency
	default:
		return KindInternal
	}
}

// OpError records the operation and record key an error occurred on.
type OpError struct {
	Op  string // e.g. "list.add_user"
	Key string // e.g. the list or item id; may be empty
	Err error
}

func (e *OpError) Error() string {
	if e.Key == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Key + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Op wraps err in an *OpError. Returns nil when err is nil.
func Op(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Key: key, Err: err}
}

// Dependency marks err as a backing-service failure unless it already carries
// a domain kind (e.g. ErrListNotFound or ErrConflict returned by a repository).
func Dependency(err error) error {
	if err == nil || Kind(err) != KindInternal {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDependency, err)
}
