package services

import (
	"context"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// mockStore implements every service store interface over in-memory
// snapshots, recording mutations for assertion.
type mockStore struct {
	shifts   []db.Shift
	sessions []db.TrainingSession
	rsvps    []db.ShiftRSVP
	clubs    []string

	upsertedSessions []db.TrainingSession
	upsertedShifts   []db.Shift
	upsertedRSVPs    []db.ShiftRSVP
	deletedSessions  []string
	deletedRSVPs     []string
	addedClubs       []string

	getShiftsErr   error
	getSessionsErr error
	getRSVPsErr    error
	getClubsErr    error
	upsertErr      error
	deleteErr      error
	addClubErr     error
}

func (m *mockStore) GetShifts(ctx context.Context) ([]db.Shift, error) {
	if m.getShiftsErr != nil {
		return nil, m.getShiftsErr
	}
	return m.shifts, nil
}

func (m *mockStore) UpsertShift(ctx context.Context, shift *db.Shift) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertedShifts = append(m.upsertedShifts, *shift)
	return nil
}

func (m *mockStore) GetSessions(ctx context.Context) ([]db.TrainingSession, error) {
	if m.getSessionsErr != nil {
		return nil, m.getSessionsErr
	}
	return m.sessions, nil
}

func (m *mockStore) UpsertSession(ctx context.Context, session *db.TrainingSession) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertedSessions = append(m.upsertedSessions, *session)
	return nil
}

func (m *mockStore) DeleteSession(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedSessions = append(m.deletedSessions, id)
	return nil
}

func (m *mockStore) GetRSVPs(ctx context.Context) ([]db.ShiftRSVP, error) {
	if m.getRSVPsErr != nil {
		return nil, m.getRSVPsErr
	}
	return m.rsvps, nil
}

func (m *mockStore) UpsertRSVP(ctx context.Context, rsvp *db.ShiftRSVP) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertedRSVPs = append(m.upsertedRSVPs, *rsvp)
	return nil
}

func (m *mockStore) DeleteRSVP(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedRSVPs = append(m.deletedRSVPs, id)
	return nil
}

func (m *mockStore) GetClubs(ctx context.Context) ([]string, error) {
	if m.getClubsErr != nil {
		return nil, m.getClubsErr
	}
	return m.clubs, nil
}

func (m *mockStore) AddClub(ctx context.Context, name string) error {
	if m.addClubErr != nil {
		return m.addClubErr
	}
	m.addedClubs = append(m.addedClubs, name)
	return nil
}

func (m *mockStore) DeleteClub(ctx context.Context, name string) error {
	return nil
}
