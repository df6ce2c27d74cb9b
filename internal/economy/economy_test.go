package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/config"
	"github.com/DilerFeed/CodeEmpire/internal/model"
)

func newTestEngine(t *testing.T) (Engine, *model.GameState) {
	t.Helper()
	cat := catalog.New()
	e := New(cat, config.Default())
	s := model.NewGameState(cat.UpgradeIDs(), cat.AssetIDs(), e.Balance.ClickBaseValue, time.Unix(0, 0))
	e.Recompute(s)
	return e, s
}

func mustEntry(t *testing.T, e Engine, kind model.PurchaseKind, id string) catalog.Entry {
	t.Helper()
	entry, ok := e.Catalog.Entry(kind, id)
	require.True(t, ok, "catalog entry %s/%s", kind, id)
	return entry
}

func TestCost_GeometricGrowth(t *testing.T) {
	e, _ := newTestEngine(t)
	notepad := mustEntry(t, e, model.KindUpgrade, "notepad")

	assert.InDelta(t, 10.0, e.Cost(notepad, 0), 1e-9)
	assert.InDelta(t, 11.5, e.Cost(notepad, 1), 1e-9)
	assert.InDelta(t, 13.225, e.Cost(notepad, 2), 1e-9)

	// Strictly increasing in level.
	for lvl := 0; lvl < 50; lvl++ {
		assert.Less(t, e.Cost(notepad, lvl), e.Cost(notepad, lvl+1))
	}
}

func TestBulkCost_EqualsSequentialSingles(t *testing.T) {
	e, _ := newTestEngine(t)
	notepad := mustEntry(t, e, model.KindUpgrade, "notepad")

	single := 0.0
	for i := 0; i < 7; i++ {
		single += e.Cost(notepad, 3+i)
	}
	assert.InDelta(t, single, e.BulkCost(notepad, 3, 7), 1e-9)

	assert.InDelta(t, 34.725, e.BulkCost(notepad, 0, 3), 1e-9)

	// Three levels starting from level 1: 10 x (1.15^1 + 1.15^2 + 1.15^3).
	assert.InDelta(t, 39.93375, e.BulkCost(notepad, 1, 3), 1e-9)
}

func TestPurchase_DebitsAndRecomputes(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = 100

	receipt, err := e.Purchase(s, model.KindUpgrade, "notepad", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.NewLevel)
	assert.InDelta(t, 10.0, receipt.TotalCost, 1e-9)
	assert.InDelta(t, 90.0, s.Currency, 1e-9)
	// base 1 + notepad effect 0.2
	assert.InDelta(t, 1.2, s.ClickPower, 1e-9)
	assert.Equal(t, 1, s.Stats.UpgradesPurchased)
	assert.InDelta(t, 1.2, s.Stats.HighestClickPower, 1e-9)
}

func TestPurchase_AssetRaisesPassiveRate(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = 1000

	_, err := e.Purchase(s, model.KindAsset, "intern", 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, s.PassiveRate, 1e-9)
	assert.Equal(t, 2, s.Stats.AssetsPurchased)
}

func TestPurchase_Errors(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = 5

	_, err := e.Purchase(s, model.KindUpgrade, "notepad", 0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = e.Purchase(s, model.KindUpgrade, "nonsense", 1)
	assert.ErrorIs(t, err, ErrUnknownEntry)

	_, err = e.Purchase(s, model.KindUpgrade, "notepad", 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Atomicity: nothing changed on any of the failures.
	assert.InDelta(t, 5.0, s.Currency, 1e-9)
	assert.Equal(t, 0, s.UpgradeLevels["notepad"])
	assert.Equal(t, 0, s.Stats.UpgradesPurchased)
}

func TestPurchase_ClampsAtMaxLevel(t *testing.T) {
	e, s := newTestEngine(t)
	notepad := mustEntry(t, e, model.KindUpgrade, "notepad")

	s.UpgradeLevels["notepad"] = notepad.MaxLevel - 2
	s.Currency = 1e300

	receipt, err := e.Purchase(s, model.KindUpgrade, "notepad", 100)
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Count)
	assert.Equal(t, notepad.MaxLevel, receipt.NewLevel)
	assert.InDelta(t, e.BulkCost(notepad, notepad.MaxLevel-2, 2), receipt.TotalCost, 1e-9)

	_, err = e.Purchase(s, model.KindUpgrade, "notepad", 1)
	assert.ErrorIs(t, err, ErrMaxLevelReached)
}

func TestPrestige_RequiresThreshold(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = e.Balance.PrestigeRequirement - 1

	_, _, err := e.Prestige(s, time.Unix(100, 0))
	assert.ErrorIs(t, err, ErrPrestigeTooEarly)
	assert.InDelta(t, e.Balance.PrestigeRequirement-1, s.Currency, 1)
}

func TestPrestige_ResetsAndCarries(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = 2 * e.Balance.PrestigeRequirement
	s.UpgradeLevels["notepad"] = 5
	s.AssetLevels["intern"] = 3
	s.UnlockedAchievements = []string{"first_line", "hundred_lines"}
	s.Stats.TotalClicks = 42

	now := time.Unix(500, 0)
	next, bonus, err := e.Prestige(s, now)
	require.NoError(t, err)

	// bonus = 1 + (2x / x) * 0.1
	assert.InDelta(t, 1.2, bonus, 1e-9)
	assert.Equal(t, 1, next.PrestigeLevel)
	assert.InDelta(t, 2.2, next.PrestigeMultiplier, 1e-9)

	assert.Zero(t, next.Currency)
	assert.Equal(t, 0, next.UpgradeLevels["notepad"])
	assert.Equal(t, 0, next.AssetLevels["intern"])

	assert.Equal(t, []string{"first_line", "hundred_lines"}, next.UnlockedAchievements)
	assert.Equal(t, 42, next.Stats.TotalClicks)
	assert.Equal(t, 1, next.Stats.TotalPrestiges)
	assert.Equal(t, now, next.LastSettled)

	// Click power reflects the new multiplier immediately.
	assert.InDelta(t, 2.2*e.Balance.ClickBaseValue, next.ClickPower, 1e-9)
}

func TestPrestigePreview_MatchesPrestige(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = 3 * e.Balance.PrestigeRequirement

	p := e.PrestigePreview(s)
	require.True(t, p.Eligible)

	next, bonus, err := e.Prestige(s, time.Unix(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, p.Bonus, bonus, 1e-9)
	assert.InDelta(t, p.NewMultiplier, next.PrestigeMultiplier, 1e-9)
}

func TestPrestigePreview_NotEligible(t *testing.T) {
	e, s := newTestEngine(t)
	s.Currency = 10

	p := e.PrestigePreview(s)
	assert.False(t, p.Eligible)
	assert.Zero(t, p.Bonus)
	assert.InDelta(t, s.PrestigeMultiplier, p.NewMultiplier, 1e-9)
}

func TestRecompute_FoldsRewardAccumulators(t *testing.T) {
	e, s := newTestEngine(t)
	s.UpgradeLevels["notepad"] = 10 // +2 click
	s.AssetLevels["intern"] = 10    // +1/sec
	s.RewardClickFlat = 5
	s.RewardClickMult = 1.25
	s.RewardPassiveMult = 2

	e.Recompute(s)

	// (1 + 2) * 1.25 + 5
	assert.InDelta(t, 8.75, s.ClickPower, 1e-9)
	assert.InDelta(t, 2.0, s.PassiveRate, 1e-9)

	// Recompute is idempotent; rewards never double-apply.
	e.Recompute(s)
	assert.InDelta(t, 8.75, s.ClickPower, 1e-9)
	assert.InDelta(t, 2.0, s.PassiveRate, 1e-9)
}
