package progress

import (
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/model"
)

// SweepMultipliers deletes temporary multipliers whose window has closed.
func SweepMultipliers(s *model.GameState, now time.Time) {
	for id, m := range s.TempMultipliers {
		if now.After(m.EndTime) {
			delete(s.TempMultipliers, id)
		}
	}
}

// MultiplierFactor sweeps expired boosts and returns the product of the live
// multipliers of one kind. With none active the factor is 1.
func MultiplierFactor(s *model.GameState, kind model.MultiplierKind, now time.Time) float64 {
	SweepMultipliers(s, now)
	factor := 1.0
	for _, m := range s.TempMultipliers {
		if m.Kind == kind {
			factor *= m.Value
		}
	}
	return factor
}
