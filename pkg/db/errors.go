package db

import (
	"errors"
	"fmt"
)

// Kind classifies store failures so callers can react without parsing
// driver-specific errors: prompt for credentials, suggest a migration,
// show a user-actionable message, or simply re-trigger a refresh.
type Kind string

const (
	// KindConfigurationMissing means the store is unreachable because
	// required connection settings are absent. The operation is aborted
	// before any attempt is made.
	KindConfigurationMissing Kind = "configuration_missing"
	// KindSchemaMismatch means the store rejected an operation because
	// an expected table or column is absent. Callers should prompt for a
	// migration rather than retry.
	KindSchemaMismatch Kind = "schema_mismatch"
	// KindConstraintViolation is a uniqueness violation, surfaced as a
	// user-actionable message. Not retried.
	KindConstraintViolation Kind = "constraint_violation"
	// KindNotFound means a referenced record is absent.
	KindNotFound Kind = "not_found"
	// KindTransientNetwork covers everything else. The core performs no
	// automatic retry; the caller may manually re-trigger a refresh.
	KindTransientNetwork Kind = "transient_network"
)

// StoreError is the normalized form every store failure crosses the
// boundary as: a message plus a classification kind.
type StoreError struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from an error chain, or "" when
// the error did not originate at the store boundary.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConstraintViolation(err error) bool {
	return KindOf(err) == KindConstraintViolation
}

func IsSchemaMismatch(err error) bool {
	return KindOf(err) == KindSchemaMismatch
}
