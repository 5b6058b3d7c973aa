package kernel

import (
	"fmt"

	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when a zero UUID is validated.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies an order in the ledger. Order names are caller labels and
// may repeat, so every status change addresses an order by its UUID.
//
// The zero value is invalid; build one with NewUUID, UUIDFromString or UUIDFromBytes.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual forms accepted by github.com/google/uuid,
// e.g. "550e8400-e29b-41d4-a716-446655440000" or "urn:uuid:...".
//
// Example:
//
//	id, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16 byte form, as stored by the
// postgres adapter. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value (a [16]byte array, so callers
// get a copy).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
