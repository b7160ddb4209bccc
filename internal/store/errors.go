package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all store implementations. Entity-specific
// errors wrap a generic one, so errors.Is(err, ErrNotFound) matches
// ErrWordNotFound too.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicate     = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed marks conflicts the database resolved by aborting
	// the transaction (serialization failure, deadlock). Retrying may succeed.
	ErrTransactionFailed = errors.New("transaction failed")

	ErrUserNotFound         = fmt.Errorf("%w: user", ErrNotFound)
	ErrWordNotFound         = fmt.Errorf("%w: word", ErrNotFound)
	ErrReviewRecordNotFound = fmt.Errorf("%w: review record", ErrNotFound)
	ErrSnapshotNotFound     = fmt.Errorf("%w: statistics snapshot", ErrNotFound)

	ErrWordExists = fmt.Errorf("%w: word", ErrDuplicate)
)

// IsNotFoundError reports whether err is ErrNotFound or one of its
// entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is ErrDuplicate or one of its
// entity-specific variants.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError adds the entity and operation to a failed storage call.
// Err is usually a sentinel from this package, mapped by the driver layer.
type StoreError struct {
	Entity    string // "word", "review_record", "statistics_snapshot", "user"
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Entity, e.Operation, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
