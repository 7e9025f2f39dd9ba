package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ClosedDays expands configured closure rules (RRULE strings, e.g.
// public holidays) into the set of calendar days they cover between
// from and until. Keys use the YYYY-MM-DD format.
func ClosedDays(rules []string, from, until time.Time) (map[string]bool, error) {
	closed := make(map[string]bool)
	for _, raw := range rules {
		rule, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid closure rule %q: %w", raw, err)
		}
		for _, t := range rule.Between(from.AddDate(0, 0, -1), until, true) {
			closed[t.Format("2006-01-02")] = true
		}
	}
	return closed, nil
}

// WithoutClosedDays filters occurrences that fall on a closed day.
func WithoutClosedDays(occurrences []Occurrence, closed map[string]bool) []Occurrence {
	if len(closed) == 0 {
		return occurrences
	}
	open := make([]Occurrence, 0, len(occurrences))
	for _, occ := range occurrences {
		if closed[occ.Date.Format("2006-01-02")] {
			continue
		}
		open = append(open, occ)
	}
	return open
}
