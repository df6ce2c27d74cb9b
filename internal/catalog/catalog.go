package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/model"
)

// Entry is one purchasable catalog definition. Effect is the flat click bonus
// for upgrades and the income per second for assets.
type Entry struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	BaseCost    float64 `json:"base_cost" yaml:"base_cost"`
	Effect      float64 `json:"effect" yaml:"effect"`
	MaxLevel    int     `json:"max_level" yaml:"max_level"`
	Tier        int     `json:"tier" yaml:"tier"`
	Icon        string  `json:"icon" yaml:"icon"`
}

// Theme maps a currency threshold to a display identifier. Thresholds are
// strictly increasing; the active theme is the greatest threshold <= currency.
type Theme struct {
	Threshold   float64 `json:"threshold" yaml:"threshold"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	CSS         string  `json:"css" yaml:"css"`
}

// RewardKind tags one component of an achievement reward.
type RewardKind string

const (
	RewardClickFlat     RewardKind = "click_flat"
	RewardClickMult     RewardKind = "click_mult"
	RewardPassiveFlat   RewardKind = "passive_flat"
	RewardPassiveMult   RewardKind = "passive_mult"
	RewardPrestigeDelta RewardKind = "prestige_delta"
)

// Reward is one tagged component of an achievement reward. An achievement
// carries zero or more of these.
type Reward struct {
	Kind  RewardKind `json:"kind"`
	Value float64    `json:"value"`
}

// Achievement pairs a pure predicate over the game state with an optional
// reward. Predicates take an explicit state snapshot and capture nothing.
type Achievement struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Icon        string                      `json:"icon"`
	Unlocked    func(*model.GameState) bool `json:"-"`
	Rewards     []Reward                    `json:"rewards,omitempty"`
}

// EventReward is the success reward of a special event. Exactly one of the
// multiplier / unlock shapes is populated per definition.
type EventReward struct {
	MultKind  model.MultiplierKind `json:"mult_kind,omitempty"`
	MultValue float64              `json:"mult_value,omitempty"`
	Duration  time.Duration        `json:"duration,omitempty"`

	UnlockID    string  `json:"unlock_id,omitempty"`
	CurrencyPct float64 `json:"currency_pct,omitempty"`
}

// EventDef is the immutable definition of a special event. TargetFactor > 0
// marks a target-based event: the target is captured from the state at spawn
// time and TimeLimit bounds the window. OnPurchase marks events completed as
// a side effect of an upgrade purchase.
type EventDef struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Action       string        `json:"action"`
	OnPurchase   bool          `json:"on_purchase,omitempty"`
	Reward       EventReward   `json:"reward"`
	TargetFactor float64       `json:"target_factor,omitempty"`
	TimeLimit    time.Duration `json:"time_limit,omitempty"`
}

// Catalog is the full immutable content set. Built once at process start.
type Catalog struct {
	Upgrades     []Entry
	Assets       []Entry
	Themes       []Theme
	Achievements []Achievement
	Events       []EventDef

	upgradeIndex map[string]int
	assetIndex   map[string]int
	eventIndex   map[string]int
}

// New returns the built-in catalog.
func New() *Catalog {
	c := &Catalog{
		Upgrades:     defaultUpgrades(),
		Assets:       defaultAssets(),
		Themes:       defaultThemes(),
		Achievements: defaultAchievements(),
		Events:       defaultEvents(),
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	sort.Slice(c.Themes, func(i, j int) bool { return c.Themes[i].Threshold < c.Themes[j].Threshold })
	c.upgradeIndex = make(map[string]int, len(c.Upgrades))
	for i, e := range c.Upgrades {
		c.upgradeIndex[e.ID] = i
	}
	c.assetIndex = make(map[string]int, len(c.Assets))
	for i, e := range c.Assets {
		c.assetIndex[e.ID] = i
	}
	c.eventIndex = make(map[string]int, len(c.Events))
	for i, e := range c.Events {
		c.eventIndex[e.ID] = i
	}
}

// Entry looks up a purchasable definition by kind and id.
func (c *Catalog) Entry(kind model.PurchaseKind, id string) (Entry, bool) {
	switch kind {
	case model.KindUpgrade:
		if i, ok := c.upgradeIndex[id]; ok {
			return c.Upgrades[i], true
		}
	case model.KindAsset:
		if i, ok := c.assetIndex[id]; ok {
			return c.Assets[i], true
		}
	}
	return Entry{}, false
}

func (c *Catalog) Event(id string) (EventDef, bool) {
	if i, ok := c.eventIndex[id]; ok {
		return c.Events[i], true
	}
	return EventDef{}, false
}

// UpgradeIDs returns upgrade ids in catalog (definition) order.
func (c *Catalog) UpgradeIDs() []string {
	ids := make([]string, len(c.Upgrades))
	for i, e := range c.Upgrades {
		ids[i] = e.ID
	}
	return ids
}

func (c *Catalog) AssetIDs() []string {
	ids := make([]string, len(c.Assets))
	for i, e := range c.Assets {
		ids[i] = e.ID
	}
	return ids
}

// ThemeFor returns the theme whose threshold is the greatest one not above
// the given currency.
func (c *Catalog) ThemeFor(currency float64) Theme {
	active := c.Themes[0]
	for _, th := range c.Themes {
		if currency >= th.Threshold {
			active = th
		} else {
			break
		}
	}
	return active
}

// Validate checks the catalog shape: unique ids, positive base costs and max
// levels, strictly increasing theme thresholds.
func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	check := func(kind string, entries []Entry) error {
		for _, e := range entries {
			if e.ID == "" {
				return fmt.Errorf("%s entry with empty id", kind)
			}
			if seen[e.ID] {
				return fmt.Errorf("duplicate catalog id: %s", e.ID)
			}
			seen[e.ID] = true
			if e.BaseCost <= 0 {
				return fmt.Errorf("%s %s: base cost must be positive", kind, e.ID)
			}
			if e.Effect < 0 {
				return fmt.Errorf("%s %s: effect must not be negative", kind, e.ID)
			}
			if e.MaxLevel <= 0 {
				return fmt.Errorf("%s %s: max level must be positive", kind, e.ID)
			}
		}
		return nil
	}
	if err := check("upgrade", c.Upgrades); err != nil {
		return err
	}
	if err := check("asset", c.Assets); err != nil {
		return err
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("catalog has no themes")
	}
	for i := 1; i < len(c.Themes); i++ {
		if c.Themes[i].Threshold <= c.Themes[i-1].Threshold {
			return fmt.Errorf("theme thresholds must be strictly increasing (%q)", c.Themes[i].Name)
		}
	}
	return nil
}
