package services

import "errors"

var (
	// ErrAdminOnly is returned by operations restricted to administrators:
	// finalizing a session and deleting one globally.
	ErrAdminOnly = errors.New("operation requires administrator role")

	// ErrShiftNotFound is returned by mutators referencing an absent shift.
	ErrShiftNotFound = errors.New("shift not found")

	// ErrSessionNotFound is returned by mutators referencing an absent session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSlotAlreadyTaken is returned when starting a session for a
	// shift occurrence that already has an active or completed session.
	ErrSlotAlreadyTaken = errors.New("an active or completed session already exists for this slot")
)
