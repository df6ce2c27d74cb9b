// Package economy implements the cost scaling, aggregate derivation and the
// two irreversible transactions (purchase, prestige) of the game.
package economy

import (
	"math"
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/config"
	"github.com/DilerFeed/CodeEmpire/internal/model"
)

type Engine struct {
	Catalog *catalog.Catalog
	Balance config.Balance
}

func New(cat *catalog.Catalog, bal config.Balance) Engine {
	return Engine{Catalog: cat, Balance: bal}
}

// Cost is the price of the next unit of an entry at the given owned level.
func (e Engine) Cost(entry catalog.Entry, level int) float64 {
	return entry.BaseCost * math.Pow(e.Balance.GrowthFactor, float64(level))
}

// BulkCost sums the per-unit cost over count consecutive levels. Kept as an
// explicit sum rather than a closed-form series so a bulk purchase always
// charges exactly what the equivalent single purchases would.
func (e Engine) BulkCost(entry catalog.Entry, level, count int) float64 {
	total := 0.0
	for i := 0; i < count; i++ {
		total += e.Cost(entry, level+i)
	}
	return total
}

// ClickPower derives lines-per-click from owned upgrade levels and the
// prestige multiplier alone.
func (e Engine) ClickPower(s *model.GameState) float64 {
	power := e.Balance.ClickBaseValue * s.PrestigeMultiplier
	for _, entry := range e.Catalog.Upgrades {
		if lvl := s.UpgradeLevels[entry.ID]; lvl > 0 {
			power += entry.Effect * float64(lvl) * s.PrestigeMultiplier
		}
	}
	return power
}

// PassiveRate derives lines-per-second from owned asset levels and the
// prestige multiplier alone.
func (e Engine) PassiveRate(s *model.GameState) float64 {
	rate := 0.0
	for _, entry := range e.Catalog.Assets {
		if lvl := s.AssetLevels[entry.ID]; lvl > 0 {
			rate += entry.Effect * float64(lvl) * s.PrestigeMultiplier
		}
	}
	return rate
}

// Recompute rebuilds both derived aggregates from scratch and folds the
// accumulated achievement rewards back in. Called after every purchase,
// prestige and reward application; the aggregates are never patched
// incrementally.
func (e Engine) Recompute(s *model.GameState) {
	s.ClickPower = e.ClickPower(s)*s.RewardClickMult + s.RewardClickFlat
	s.PassiveRate = e.PassiveRate(s)*s.RewardPassiveMult + s.RewardPassiveFlat
}

// PurchaseReceipt reports what a successful purchase actually bought after
// max-level clamping.
type PurchaseReceipt struct {
	Kind      model.PurchaseKind `json:"kind"`
	EntryID   string             `json:"entry_id"`
	Count     int                `json:"count"`
	TotalCost float64            `json:"total_cost"`
	NewLevel  int                `json:"new_level"`
}

// Purchase buys count levels of one entry. The purchase is atomic: on any
// error the state is untouched. Count is clamped down to the remaining
// headroom below the entry's max level; the player is charged only for the
// clamped amount.
func (e Engine) Purchase(s *model.GameState, kind model.PurchaseKind, id string, count int) (PurchaseReceipt, error) {
	if count < 1 {
		return PurchaseReceipt{}, ErrInvalidCount
	}
	entry, ok := e.Catalog.Entry(kind, id)
	if !ok {
		return PurchaseReceipt{}, ErrUnknownEntry
	}
	level := s.Level(kind, id)
	if level >= entry.MaxLevel {
		return PurchaseReceipt{}, ErrMaxLevelReached
	}
	if level+count > entry.MaxLevel {
		count = entry.MaxLevel - level
	}
	total := e.BulkCost(entry, level, count)
	if s.Currency < total {
		return PurchaseReceipt{}, ErrInsufficientFunds
	}

	s.Currency -= total
	switch kind {
	case model.KindUpgrade:
		s.UpgradeLevels[id] = level + count
		s.Stats.UpgradesPurchased += count
	case model.KindAsset:
		s.AssetLevels[id] = level + count
		s.Stats.AssetsPurchased += count
	}
	e.Recompute(s)
	if s.ClickPower > s.Stats.HighestClickPower {
		s.Stats.HighestClickPower = s.ClickPower
	}
	if s.PassiveRate > s.Stats.HighestPassiveRate {
		s.Stats.HighestPassiveRate = s.PassiveRate
	}

	return PurchaseReceipt{
		Kind:      kind,
		EntryID:   id,
		Count:     count,
		TotalCost: total,
		NewLevel:  level + count,
	}, nil
}

// Prestige converts the accumulated currency into a permanent multiplier and
// returns a brand new state. Callers must discard every reference to the old
// state; only the prestige standing, unlocked achievements and lifetime stats
// carry over.
func (e Engine) Prestige(s *model.GameState, now time.Time) (*model.GameState, float64, error) {
	if s.Currency < e.Balance.PrestigeRequirement {
		return nil, 0, ErrPrestigeTooEarly
	}

	bonus := 1 + (s.Currency/e.Balance.PrestigeRequirement)*e.Balance.PrestigeBonusRate

	next := model.NewGameState(e.Catalog.UpgradeIDs(), e.Catalog.AssetIDs(), e.Balance.ClickBaseValue, now)
	next.PrestigeLevel = s.PrestigeLevel + 1
	next.PrestigeMultiplier = s.PrestigeMultiplier + bonus
	next.UnlockedAchievements = append([]string{}, s.UnlockedAchievements...)
	next.Stats = s.Stats
	next.Stats.TotalPrestiges++
	e.Recompute(next)

	return next, bonus, nil
}

// PrestigePreview is the read-only answer to "what would prestiging now get
// me". No mutation.
type PrestigePreview struct {
	CurrentLines      float64 `json:"current_lines"`
	Requirement       float64 `json:"prestige_requirement"`
	Eligible          bool    `json:"eligible"`
	Bonus             float64 `json:"prestige_bonus"`
	CurrentMultiplier float64 `json:"current_multiplier"`
	NewMultiplier     float64 `json:"new_multiplier"`
}

func (e Engine) PrestigePreview(s *model.GameState) PrestigePreview {
	p := PrestigePreview{
		CurrentLines:      s.Currency,
		Requirement:       e.Balance.PrestigeRequirement,
		Eligible:          s.Currency >= e.Balance.PrestigeRequirement,
		CurrentMultiplier: s.PrestigeMultiplier,
	}
	if p.Eligible {
		p.Bonus = 1 + (s.Currency/e.Balance.PrestigeRequirement)*e.Balance.PrestigeBonusRate
		p.NewMultiplier = s.PrestigeMultiplier + p.Bonus
	} else {
		p.NewMultiplier = s.PrestigeMultiplier
	}
	return p
}
