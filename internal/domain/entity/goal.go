package entity

import (
	"time"
)

// Goal is a user-owned SMART goal. Toggling completion applies or reverses
// its XP exactly once per toggle.
type Goal struct {
	ID          string    // Server-assigned document ID.
	Title       string    // Short goal title.
	Description string    // Free-form description.
	Measurable  string    // How progress is measured.
	Achievable  string    // Why the goal is attainable.
	Relevant    string    // Why the goal matters.
	TimeBound   time.Time // Deadline.
	XP          int       // Fixed reward, set at creation.
	IsCompleted bool      // Whether the goal is currently marked complete.
	CreatedAt   time.Time // Server-stamped creation time.
}
