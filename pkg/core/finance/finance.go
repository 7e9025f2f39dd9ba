// Package finance derives revenue, cost and profit figures from
// completed training sessions. It is strictly read-side: totals are
// recomputed from scratch on every call because payments stay editable
// after a session completes.
package finance

import (
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// DefaultSessionCost is the fallback applied when a session's cost is
// unset. A recorded cost of zero also falls back to this value, so a
// genuinely free session is not representable; the behavior is kept
// for compatibility with existing records.
const DefaultSessionCost = 25

// Summary aggregates payment and cost figures over completed sessions.
type Summary struct {
	Revenue           float64
	Cost              float64
	Profit            float64
	PendingCount      int
	CompletedSessions int
}

// Summarize computes the aggregate over every completed session in the
// snapshot. Revenue sums paid attendee amounts; cost sums the session
// cost of sessions whose cost was settled; an attendee without a
// payment record counts as pending.
func Summarize(sessions []db.TrainingSession, defaultCost float64) Summary {
	var sum Summary
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed {
			continue
		}
		sum.CompletedSessions++
		for _, attendee := range s.AttendeeIDs {
			payment, ok := s.Payments[attendee]
			if ok && payment.Paid {
				sum.Revenue += payment.Amount
			} else {
				sum.PendingCount++
			}
		}
		if s.IsCostPaid {
			sum.Cost += SessionCost(s, defaultCost)
		}
	}
	sum.Profit = sum.Revenue - sum.Cost
	return sum
}

// SessionCost returns the session's cost, falling back to defaultCost
// when unset or zero.
func SessionCost(s *db.TrainingSession, defaultCost float64) float64 {
	if s.SessionCost == 0 {
		return defaultCost
	}
	return s.SessionCost
}

// SessionProfit is a single session's paid revenue minus its cost,
// using the same fallback rule as the aggregate.
func SessionProfit(s *db.TrainingSession, defaultCost float64) float64 {
	var revenue float64
	for _, attendee := range s.AttendeeIDs {
		if payment, ok := s.Payments[attendee]; ok && payment.Paid {
			revenue += payment.Amount
		}
	}
	return revenue - SessionCost(s, defaultCost)
}
