// Package service defines the interfaces for external collaborators: the
// event bus, the identity provider and the generative text service.
package service

import (
	"context"
)

// Progression event kinds.
const (
	EventXPAdjusted    = "xp.adjusted"
	EventEraStarted    = "era.started"
	EventEraCompleted  = "era.completed"
	EventRankChanged   = "rank.changed"
	EventSkillUnlocked = "skill.unlocked"
)

// ProgressionEvent represents a progression change published for downstream
// consumers (feeds, analytics). Events are advisory: publishing failures are
// logged and never fail the mutation that produced them.
type ProgressionEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Kind      string `json:"kind"`
	UserID    string `json:"user_id"`
	XPDelta   int    `json:"xp_delta,omitempty"`
	XPTotal   int    `json:"xp_total"`
	EraID     string `json:"era_id,omitempty"`
	SkillID   string `json:"skill_id,omitempty"`
	RankName  string `json:"rank_name,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProgressionEvent publishes a progression event for async processing
	PublishProgressionEvent(ctx context.Context, event *ProgressionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
