package telemetry

import (
	"encoding/json"
	"time"
)

// Stats summarizes gameplay events over a period, for balance tuning.
type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	Clicks          int               `json:"clicks"`
	Purchases       int               `json:"purchases"`
	Prestiges       int               `json:"prestiges"`
	SpecialsSpawned int               `json:"specials_spawned"`
	SpecialsDone    int               `json:"specials_completed"`
	SpecialsMissed  int               `json:"specials_expired"`
	CurrencySpent   float64           `json:"currency_spent"`
	PurchasesByID   map[string]int    `json:"purchases_by_id"`
}

// CalculateStats folds events into balance stats.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		PurchasesByID: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventClick:
			stats.Clicks++
		case EventPurchase:
			stats.Purchases++
			if id, ok := metadata["entry_id"].(string); ok {
				stats.PurchasesByID[id]++
			}
			if cost, ok := metadata["total_cost"].(float64); ok {
				stats.CurrencySpent += cost
			}
		case EventPrestige:
			stats.Prestiges++
		case EventSpecialSpawned:
			stats.SpecialsSpawned++
		case EventSpecialCompleted:
			stats.SpecialsDone++
		case EventSpecialExpired:
			stats.SpecialsMissed++
		}
	}
	return stats, nil
}
