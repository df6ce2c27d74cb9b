// Package progress tracks the player's milestones: achievement unlocks,
// special-event lifecycle and temporary multipliers.
package progress

import (
	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/economy"
	"github.com/DilerFeed/CodeEmpire/internal/model"
)

type Tracker struct {
	Catalog *catalog.Catalog
	Economy economy.Engine
}

func New(cat *catalog.Catalog, econ economy.Engine) Tracker {
	return Tracker{Catalog: cat, Economy: econ}
}

// EvaluateAchievements checks every locked achievement against the current
// state and unlocks the ones whose predicate holds, applying their rewards.
// Iteration follows catalog order, so a predicate reading another
// achievement's side effect behaves the same on every pass. Returns the newly
// unlocked ids; calling again without a state change returns nothing.
func (t Tracker) EvaluateAchievements(s *model.GameState) []string {
	var unlocked []string
	for _, ach := range t.Catalog.Achievements {
		if s.HasAchievement(ach.ID) {
			continue
		}
		if !ach.Unlocked(s) {
			continue
		}
		s.UnlockedAchievements = append(s.UnlockedAchievements, ach.ID)
		unlocked = append(unlocked, ach.ID)
		t.applyRewards(s, ach.Rewards)
	}
	return unlocked
}

// applyRewards is the single dispatcher for achievement rewards. Each
// component lands in the matching accumulator on the state; the aggregate
// recompute then folds the accumulators in, so the bonus survives later
// purchase-triggered recomputes.
func (t Tracker) applyRewards(s *model.GameState, rewards []catalog.Reward) {
	if len(rewards) == 0 {
		return
	}
	for _, r := range rewards {
		switch r.Kind {
		case catalog.RewardClickFlat:
			s.RewardClickFlat += r.Value
		case catalog.RewardClickMult:
			s.RewardClickMult *= r.Value
		case catalog.RewardPassiveFlat:
			s.RewardPassiveFlat += r.Value
		case catalog.RewardPassiveMult:
			s.RewardPassiveMult *= r.Value
		case catalog.RewardPrestigeDelta:
			s.PrestigeMultiplier += r.Value
		}
	}
	t.Economy.Recompute(s)
}
