package db

import (
	"context"
	"time"
)

// The store is a generic record store: get-all, upsert-by-id and
// delete-by-id per collection. Upserts are last-write-wins; there is no
// optimistic-concurrency token.

// ShiftStore defines the interface for shift template operations.
type ShiftStore interface {
	GetShifts(ctx context.Context) ([]Shift, error)
	UpsertShift(ctx context.Context, shift *Shift) error
	DeleteShift(ctx context.Context, id string) error
}

// SessionStore defines the interface for training session operations.
type SessionStore interface {
	GetSessions(ctx context.Context) ([]TrainingSession, error)
	UpsertSession(ctx context.Context, session *TrainingSession) error
	DeleteSession(ctx context.Context, id string) error
}

// RSVPStore defines the interface for attendance intention operations.
type RSVPStore interface {
	GetRSVPs(ctx context.Context) ([]ShiftRSVP, error)
	UpsertRSVP(ctx context.Context, rsvp *ShiftRSVP) error
	DeleteRSVP(ctx context.Context, id string) error
}

// ClubStore defines the interface for the flat club-name registry.
type ClubStore interface {
	GetClubs(ctx context.Context) ([]string, error)
	AddClub(ctx context.Context, name string) error
	DeleteClub(ctx context.Context, name string) error
}

// Store is the full record store the CLI wires up.
type Store interface {
	ShiftStore
	SessionStore
	RSVPStore
	ClubStore
}

// FindShift returns the shift with the given ID from a snapshot, or nil.
func FindShift(shifts []Shift, id string) *Shift {
	for i := range shifts {
		if shifts[i].ID == id {
			return &shifts[i]
		}
	}
	return nil
}

// FindSession returns the session with the given ID from a snapshot, or nil.
func FindSession(sessions []TrainingSession, id string) *TrainingSession {
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i]
		}
	}
	return nil
}

// SessionsByShiftDay indexes a session snapshot by shift ID and
// calendar day, the lookup the occurrence calculators de-duplicate
// against. The key format is "<shiftID>|YYYY-MM-DD".
func SessionsByShiftDay(sessions []TrainingSession) map[string]*TrainingSession {
	index := make(map[string]*TrainingSession, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		if s.ShiftID == ManualEntryShiftID {
			continue
		}
		index[ShiftDayKey(s.ShiftID, s.Date)] = s
	}
	return index
}

// ShiftDayKey builds the SessionsByShiftDay lookup key.
func ShiftDayKey(shiftID string, date time.Time) string {
	return shiftID + "|" + date.Format("2006-01-02")
}
