package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_Error(t *testing.T) {
	err := &StoreError{Kind: KindNotFound, Op: "get shifts", Message: "shift absent"}
	assert.Equal(t, "get shifts: shift absent", err.Error())

	err = &StoreError{Kind: KindTransientNetwork, Op: "get shifts", Err: errors.New("connection refused")}
	assert.Equal(t, "get shifts: connection refused", err.Error())

	err = &StoreError{Kind: KindTransientNetwork, Op: "get shifts"}
	assert.Equal(t, "get shifts", err.Error())
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StoreError{Kind: KindTransientNetwork, Op: "get shifts", Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	storeErr := &StoreError{Kind: KindSchemaMismatch, Op: "get sessions"}
	wrapped := fmt.Errorf("failed to fetch sessions: %w", storeErr)

	assert.Equal(t, KindSchemaMismatch, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsNotFound(&StoreError{Kind: KindNotFound}))
	assert.True(t, IsConstraintViolation(&StoreError{Kind: KindConstraintViolation}))
	assert.True(t, IsSchemaMismatch(&StoreError{Kind: KindSchemaMismatch}))

	transient := &StoreError{Kind: KindTransientNetwork}
	assert.False(t, IsNotFound(transient))
	assert.False(t, IsConstraintViolation(transient))
	assert.False(t, IsSchemaMismatch(transient))
}
