package telemetry

import "time"

type EventType string

const (
	EventClick             EventType = "click"
	EventPurchase          EventType = "purchase"
	EventPrestige          EventType = "prestige"
	EventAchievementUnlock EventType = "achievement_unlocked"
	EventSpecialSpawned    EventType = "event_spawned"
	EventSpecialCompleted  EventType = "event_completed"
	EventSpecialExpired    EventType = "event_expired"
	EventReconcile         EventType = "reconcile"
	EventReset             EventType = "reset"
	EventSessionStarted    EventType = "session_started"
	EventThemeChanged      EventType = "theme_changed"
	EventBulkModeChanged   EventType = "bulk_mode_changed"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Session   string    `json:"session"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
