package config

import "time"

// Balance holds the economy tuning knobs.
type Balance struct {
	// Click and cost scaling
	ClickBaseValue float64 `json:"click_base_value"`
	GrowthFactor   float64 `json:"growth_factor"`

	// Prestige
	PrestigeRequirement float64 `json:"prestige_requirement"`
	PrestigeBonusRate   float64 `json:"prestige_bonus_rate"`

	// Special events
	EventChance        float64       `json:"event_chance"`
	EventDefaultWindow time.Duration `json:"event_default_window"`

	// Session tracking: a gap longer than this starts a new session.
	SessionGap time.Duration `json:"session_gap"`
}

// Default returns the standard balance configuration.
func Default() Balance {
	return Balance{
		ClickBaseValue:      1,
		GrowthFactor:        1.15,
		PrestigeRequirement: 1_000_000_000,
		PrestigeBonusRate:   0.1,
		EventChance:         0.01,
		EventDefaultWindow:  60 * time.Second,
		SessionGap:          30 * time.Minute,
	}
}

// Casual lowers the wall for short-session players.
func Casual() Balance {
	cfg := Default()
	cfg.GrowthFactor = 1.10
	cfg.PrestigeRequirement = 100_000_000
	cfg.EventChance = 0.02
	return cfg
}

// Hard steepens the curve for players who found the default too quick.
func Hard() Balance {
	cfg := Default()
	cfg.GrowthFactor = 1.20
	cfg.PrestigeRequirement = 10_000_000_000
	cfg.EventChance = 0.005
	return cfg
}
