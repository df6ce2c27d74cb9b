package model

import "time"

// PurchaseKind selects which half of the catalog a purchase targets.
type PurchaseKind string

const (
	KindUpgrade PurchaseKind = "upgrades"
	KindAsset   PurchaseKind = "assets"
)

// MultiplierKind says which rate a temporary multiplier applies to.
type MultiplierKind string

const (
	MultClick   MultiplierKind = "click"
	MultPassive MultiplierKind = "passive"
)

// TempMultiplier is an expiring multiplicative modifier. Expired entries are
// removed lazily the next time a settlement pass scans the set.
type TempMultiplier struct {
	Kind    MultiplierKind `json:"kind"`
	Value   float64        `json:"value"`
	EndTime time.Time      `json:"end_time"`
}

// ActiveEvent is a live instance of a special event on one player's state.
// Target is captured at spawn time for target-based events and never
// re-evaluated afterwards.
type ActiveEvent struct {
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	EndTime   time.Time `json:"end_time"`
	Target    *float64  `json:"target,omitempty"`
	Completed bool      `json:"completed"`
}

// Stats are append-only gameplay counters that survive prestige resets.
type Stats struct {
	TotalLinesWritten     float64   `json:"total_lines_written"`
	TotalLinesFromClicks  float64   `json:"total_lines_from_clicks"`
	TotalLinesFromPassive float64   `json:"total_lines_from_passive"`
	TotalClicks           int       `json:"total_clicks"`
	TotalPrestiges        int       `json:"total_prestiges"`
	HighestClickPower     float64   `json:"highest_click_power"`
	HighestPassiveRate    float64   `json:"highest_passive_rate"`
	UpgradesPurchased     int       `json:"upgrades_purchased"`
	AssetsPurchased       int       `json:"assets_purchased"`
	LongestSessionSecs    float64   `json:"longest_session_secs"`
	LastSessionStart      time.Time `json:"last_session_start"`
}

// GameState is the single aggregate root for one player session. Every field
// is present from construction; there is no lazy initialization.
//
// ClickPower and PassiveRate are derived values. They are recomputed in full
// after every purchase and prestige, never patched incrementally. Achievement
// rewards that touched them are preserved across recomputes through the
// Reward* accumulators.
type GameState struct {
	Currency           float64 `json:"currency"`
	PrestigeLevel      int     `json:"prestige_level"`
	PrestigeMultiplier float64 `json:"prestige_multiplier"`

	ClickPower  float64 `json:"click_power"`
	PassiveRate float64 `json:"passive_rate"`

	// Accumulated achievement rewards, folded back in after each full
	// aggregate recompute. Flat parts add, mult parts are running products.
	RewardClickFlat   float64 `json:"reward_click_flat"`
	RewardClickMult   float64 `json:"reward_click_mult"`
	RewardPassiveFlat float64 `json:"reward_passive_flat"`
	RewardPassiveMult float64 `json:"reward_passive_mult"`

	UpgradeLevels map[string]int `json:"upgrade_levels"`
	AssetLevels   map[string]int `json:"asset_levels"`

	LastSettled time.Time `json:"last_settled"`
	Theme       string    `json:"theme"`

	UnlockedAchievements []string `json:"unlocked_achievements"`
	SpecialUnlocks       []string `json:"special_unlocks"`

	ActiveEvents    []ActiveEvent             `json:"active_events"`
	TempMultipliers map[string]TempMultiplier `json:"temp_multipliers"`

	BulkModes map[PurchaseKind]int `json:"bulk_modes"`

	Stats Stats `json:"stats"`
}

// NewGameState builds a fresh state with every catalog entry at level zero.
// The caller supplies the base click value so the constructor stays free of
// balance knowledge.
func NewGameState(upgradeIDs, assetIDs []string, baseClickValue float64, now time.Time) *GameState {
	s := &GameState{
		PrestigeMultiplier: 1,
		ClickPower:         baseClickValue,
		RewardClickMult:    1,
		RewardPassiveMult:  1,
		UpgradeLevels:      make(map[string]int, len(upgradeIDs)),
		AssetLevels:        make(map[string]int, len(assetIDs)),
		LastSettled:        now,
		UnlockedAchievements: []string{},
		SpecialUnlocks:       []string{},
		ActiveEvents:         []ActiveEvent{},
		TempMultipliers:      map[string]TempMultiplier{},
		BulkModes: map[PurchaseKind]int{
			KindUpgrade: 1,
			KindAsset:   1,
		},
		Stats: Stats{LastSessionStart: now},
	}
	for _, id := range upgradeIDs {
		s.UpgradeLevels[id] = 0
	}
	for _, id := range assetIDs {
		s.AssetLevels[id] = 0
	}
	return s
}

// Level returns the owned level for a catalog entry of the given kind.
func (s *GameState) Level(kind PurchaseKind, id string) int {
	switch kind {
	case KindUpgrade:
		return s.UpgradeLevels[id]
	case KindAsset:
		return s.AssetLevels[id]
	}
	return 0
}

func (s *GameState) HasAchievement(id string) bool {
	for _, a := range s.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

func (s *GameState) HasSpecialUnlock(id string) bool {
	for _, u := range s.SpecialUnlocks {
		if u == id {
			return true
		}
	}
	return false
}

// ActiveEvent returns the live, non-completed event with the given id.
func (s *GameState) ActiveEventByID(eventID string) *ActiveEvent {
	for i := range s.ActiveEvents {
		if s.ActiveEvents[i].EventID == eventID && !s.ActiveEvents[i].Completed {
			return &s.ActiveEvents[i]
		}
	}
	return nil
}

// Clone returns a deep copy. Stores hand out clones so callers never share
// maps or slices with the persisted state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	out := *s
	out.UpgradeLevels = make(map[string]int, len(s.UpgradeLevels))
	for k, v := range s.UpgradeLevels {
		out.UpgradeLevels[k] = v
	}
	out.AssetLevels = make(map[string]int, len(s.AssetLevels))
	for k, v := range s.AssetLevels {
		out.AssetLevels[k] = v
	}
	out.UnlockedAchievements = append([]string{}, s.UnlockedAchievements...)
	out.SpecialUnlocks = append([]string{}, s.SpecialUnlocks...)
	out.ActiveEvents = make([]ActiveEvent, len(s.ActiveEvents))
	for i, ev := range s.ActiveEvents {
		out.ActiveEvents[i] = ev
		if ev.Target != nil {
			t := *ev.Target
			out.ActiveEvents[i].Target = &t
		}
	}
	out.TempMultipliers = make(map[string]TempMultiplier, len(s.TempMultipliers))
	for k, v := range s.TempMultipliers {
		out.TempMultipliers[k] = v
	}
	out.BulkModes = make(map[PurchaseKind]int, len(s.BulkModes))
	for k, v := range s.BulkModes {
		out.BulkModes[k] = v
	}
	return &out
}
