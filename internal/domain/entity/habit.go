package entity

import (
	"time"
)

// Habit is a user-owned recurring practice. Completion is toggled manually;
// resets are not time-driven. The XP reward is fixed from the category at
// creation time and never recomputed afterwards.
type Habit struct {
	ID                string    // Server-assigned document ID.
	Name              string    // User-facing habit name.
	Category          string    // One of the catalog's fixed habit categories.
	Completed         bool      // Whether the habit is currently marked complete.
	XP                int       // Fixed reward, derived from Category at creation.
	Streak            int       // Non-negative run of completions.
	LastCompletedDate string    // Calendar date (YYYY-MM-DD) of the last completion, empty if never.
	CreatedAt         time.Time // Server-stamped creation time.
}

// CompletedToday reports whether the habit's last completion falls on the
// given calendar day. Day identity is all that matters for streak rules, so
// the comparison is on the formatted date, not the instant.
func (h *Habit) CompletedToday(now time.Time) bool {
	return h.LastCompletedDate == now.Format(time.DateOnly)
}
