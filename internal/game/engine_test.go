package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/config"
	"github.com/DilerFeed/CodeEmpire/internal/economy"
	"github.com/DilerFeed/CodeEmpire/internal/model"
	"github.com/DilerFeed/CodeEmpire/internal/telemetry"
)

const testSession = "sess-1"

func newTestEngine(t *testing.T) (Engine, *FakeClock, *FakeRand) {
	t.Helper()
	clock := NewFakeClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	rng := NewFakeRand() // empty queue: never spawns
	eng := NewEngine(catalog.New(), config.Default(), telemetry.NewMemoryRepository(), clock, rng)
	return eng, clock, rng
}

func TestClick_CreditsClickPower(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())

	res := eng.Click(testSession, s)
	assert.InDelta(t, 1.0, res.ClickGain, 1e-9)
	assert.InDelta(t, 1.0, s.Currency, 1e-9)
	assert.Equal(t, 1, s.Stats.TotalClicks)
	assert.InDelta(t, 1.0, s.Stats.TotalLinesFromClicks, 1e-9)
	// first_line unlocks on the first earned line
	assert.Contains(t, res.NewAchievements, "first_line")
}

func TestClick_AppliesTempMultiplier(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.TempMultipliers["boost"] = model.TempMultiplier{
		Kind:    model.MultClick,
		Value:   5,
		EndTime: clock.Now().Add(10 * time.Second),
	}

	res := eng.Click(testSession, s)
	assert.InDelta(t, 5.0, res.ClickGain, 1e-9)

	// Once the boost ends, the next click is back to base power.
	clock.Advance(11 * time.Second)
	res = eng.Click(testSession, s)
	assert.InDelta(t, 1.0, res.ClickGain, 1e-9)
	assert.Empty(t, s.TempMultipliers)
}

func TestSettle_AccruesPassiveIncome(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 100
	s.AssetLevels["intern"] = 20 // 20 * 0.1 = 2 lines/sec
	eng.Economy.Recompute(s)
	require.InDelta(t, 2.0, s.PassiveRate, 1e-9)

	clock.Advance(10 * time.Second)
	res := eng.Click(testSession, s)
	assert.InDelta(t, 20.0, res.PassiveGain, 1e-9)
	assert.InDelta(t, 100+20+1, s.Currency, 1e-9) // passive, then one base click
	assert.Equal(t, clock.Now(), s.LastSettled)
}

func TestSettle_NegativeElapsedEarnsNothing(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.AssetLevels["intern"] = 10
	eng.Economy.Recompute(s)
	s.LastSettled = clock.Now().Add(time.Hour) // clock skew

	res := eng.Click(testSession, s)
	assert.Zero(t, res.PassiveGain)
	assert.Equal(t, clock.Now(), s.LastSettled)
}

func TestPurchase_UsesBulkModeWhenCountOmitted(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 1_000_000
	_, err := eng.SetBulkMode(testSession, s, model.KindUpgrade, 10)
	require.NoError(t, err)

	res, err := eng.Purchase(testSession, s, model.KindUpgrade, "notepad", 0)
	require.NoError(t, err)
	require.NotNil(t, res.Receipt)
	assert.Equal(t, 10, res.Receipt.Count)
	assert.Equal(t, 10, s.UpgradeLevels["notepad"])
}

func TestPurchase_InsufficientFundsLeavesStateSettled(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.AssetLevels["intern"] = 10
	eng.Economy.Recompute(s)

	clock.Advance(5 * time.Second)
	res, err := eng.Purchase(testSession, s, model.KindUpgrade, "quantum_keyboard", 1)
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
	// The failed purchase still settled idle income.
	assert.InDelta(t, 5.0, res.PassiveGain, 1e-9)
	assert.NotNil(t, res.State)
	assert.Equal(t, clock.Now(), s.LastSettled)
}

func TestPurchase_UpgradeResolvesPurchaseTriggeredEvent(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 1000
	s.ActiveEvents = append(s.ActiveEvents, model.ActiveEvent{
		EventID: "code_review",
		Name:    "Code Review",
		EndTime: clock.Now().Add(time.Minute),
	})

	res, err := eng.Purchase(testSession, s, model.KindUpgrade, "notepad", 1)
	require.NoError(t, err)
	require.NotNil(t, res.CompletedEvent)
	assert.Equal(t, "code_review", res.CompletedEvent.EventID)
	assert.Empty(t, s.ActiveEvents)
	// The reward is a timed passive boost.
	found := false
	for _, m := range s.TempMultipliers {
		if m.Kind == model.MultPassive {
			found = true
			assert.InDelta(t, 1.2, m.Value, 1e-9)
		}
	}
	assert.True(t, found)
}

func TestPurchase_AssetDoesNotResolvePurchaseTriggeredEvent(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 1000
	s.ActiveEvents = append(s.ActiveEvents, model.ActiveEvent{
		EventID: "code_review",
		Name:    "Code Review",
		EndTime: clock.Now().Add(time.Minute),
	})

	res, err := eng.Purchase(testSession, s, model.KindAsset, "intern", 1)
	require.NoError(t, err)
	assert.Nil(t, res.CompletedEvent)
	assert.Len(t, s.ActiveEvents, 1)
}

func TestPrestige_ThroughEngine(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 2 * eng.Balance.PrestigeRequirement
	s.Stats.TotalClicks = 7

	res, err := eng.Prestige(testSession, s)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, res.PrestigeBonus, 1e-9)
	require.NotNil(t, res.State)
	assert.Zero(t, res.State.Currency)
	assert.Equal(t, 1, res.State.PrestigeLevel)
	assert.Equal(t, 7, res.State.Stats.TotalClicks)
}

func TestPrestige_TooEarly(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 5

	_, err := eng.Prestige(testSession, s)
	assert.ErrorIs(t, err, economy.ErrPrestigeTooEarly)
	assert.InDelta(t, 5.0, s.Currency, 1e-9)
}

func TestSpawn_RollBelowChanceSpawnsEvent(t *testing.T) {
	eng, clock, rng := newTestEngine(t)
	s := eng.NewState(clock.Now())
	rng.Queue(0.001) // well under the 0.01 chance, lands on the first def

	res := eng.Click(testSession, s)
	require.NotNil(t, res.SpawnedEvent)
	assert.Len(t, s.ActiveEvents, 1)

	// While one event is live, further rolls never stack a second one.
	rng.Queue(0.001)
	res = eng.Click(testSession, s)
	assert.Nil(t, res.SpawnedEvent)
	assert.Len(t, s.ActiveEvents, 1)
}

func TestSettle_ExpiresStaleEvents(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.ActiveEvents = append(s.ActiveEvents, model.ActiveEvent{
		EventID: "bug_found",
		Name:    "Bug Found",
		EndTime: clock.Now().Add(30 * time.Second),
	})

	clock.Advance(time.Minute)
	res := eng.Click(testSession, s)
	require.Len(t, res.ExpiredEvents, 1)
	assert.Equal(t, "bug_found", res.ExpiredEvents[0].EventID)
	assert.Empty(t, s.ActiveEvents)
}

func TestCompleteEvent_DoesNotSettlePassiveIncome(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.AssetLevels["intern"] = 10
	eng.Economy.Recompute(s)
	s.ActiveEvents = append(s.ActiveEvents, model.ActiveEvent{
		EventID: "bug_found",
		Name:    "Bug Found",
		EndTime: clock.Now().Add(time.Minute),
	})
	settledAt := s.LastSettled

	clock.Advance(10 * time.Second)
	res, err := eng.CompleteEvent(testSession, s, "bug_found")
	require.NoError(t, err)
	assert.NotNil(t, res.CompletedEvent)
	assert.Zero(t, res.PassiveGain)
	assert.Equal(t, settledAt, s.LastSettled)
}

func TestCompleteEvent_UnknownID(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())

	_, err := eng.CompleteEvent(testSession, s, "bug_found")
	assert.Error(t, err)
}

func TestTrackSession_GapStartsNewSession(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	start := clock.Now()
	s := eng.NewState(start)

	clock.Advance(10 * time.Minute)
	eng.Click(testSession, s)
	assert.InDelta(t, 600, s.Stats.LongestSessionSecs, 1e-9)
	assert.Equal(t, start, s.Stats.LastSessionStart)

	// An hour away is past the 30m gap: the old session closes at its last
	// settle, and a new one starts now.
	clock.Advance(time.Hour)
	eng.Click(testSession, s)
	assert.InDelta(t, 600, s.Stats.LongestSessionSecs, 1e-9)
	assert.Equal(t, clock.Now(), s.Stats.LastSessionStart)
}

func TestSetBulkMode_RejectsInvalidMode(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())

	_, err := eng.SetBulkMode(testSession, s, model.KindUpgrade, 7)
	assert.ErrorIs(t, err, ErrInvalidBulkMode)

	for _, mode := range []int{1, 10, 100} {
		_, err := eng.SetBulkMode(testSession, s, model.KindAsset, mode)
		assert.NoError(t, err)
		assert.Equal(t, mode, s.BulkModes[model.KindAsset])
	}
}

func TestReconcile_SanitizesSubmittedState(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	now := clock.Now()
	sub := eng.NewState(now)
	sub.Currency = 5000
	sub.UpgradeLevels["notepad"] = 3
	sub.UpgradeLevels["hacked_entry"] = 99
	sub.RewardClickMult = 0
	sub.LastSettled = now.Add(48 * time.Hour)

	res := eng.Reconcile(testSession, sub)
	s := res.State
	assert.Equal(t, 3, s.UpgradeLevels["notepad"])
	assert.NotContains(t, s.UpgradeLevels, "hacked_entry")
	assert.InDelta(t, 1.0, s.RewardClickMult, 1e-9)
	assert.Equal(t, now, s.LastSettled)
	// Derived values come from the server, not the submitted snapshot.
	assert.InDelta(t, 1+3*0.2, s.ClickPower, 1e-9)
	// The submitted state itself is left untouched.
	assert.Equal(t, 99, sub.UpgradeLevels["hacked_entry"])
}

func TestReset_ReturnsFreshState(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 12345
	eng.Click(testSession, s)

	res := eng.Reset(testSession)
	assert.Zero(t, res.State.Currency)
	assert.Empty(t, res.State.UnlockedAchievements)
	assert.Equal(t, clock.Now(), res.State.LastSettled)
}

func TestStatsReport(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	eng.Click(testSession, s)
	clock.Advance(10 * time.Minute)
	eng.Click(testSession, s)

	rep := eng.StatsReport(s)
	assert.InDelta(t, s.Currency, rep.Currency, 1e-9)
	assert.Equal(t, 2, rep.Stats.TotalClicks)
	assert.Equal(t, len(eng.Catalog.Achievements), rep.AchievementsTotal)
	assert.Equal(t, len(s.UnlockedAchievements), rep.Achievements)

	wantPct := float64(rep.Achievements) / float64(rep.AchievementsTotal) * 100
	assert.InDelta(t, wantPct, rep.AchievementPct, 1e-9)
	assert.InDelta(t, s.Stats.TotalLinesFromClicks/2, rep.AvgLinesPerClick, 1e-9)
	assert.Equal(t, "0h 10m 0s", rep.TotalPlaytime)
}

func TestStatsReport_FreshStateDerivedFields(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	rep := eng.StatsReport(eng.NewState(clock.Now()))

	assert.Zero(t, rep.AchievementPct)
	assert.Zero(t, rep.AvgLinesPerClick)
	assert.Equal(t, "0h 0m 0s", rep.TotalPlaytime)
}

func TestFormatPlaytime(t *testing.T) {
	assert.Equal(t, "1h 2m 5s", formatPlaytime(3725))
	assert.Equal(t, "0h 0m 59s", formatPlaytime(59.9))
}

func TestActions_RecordTelemetry(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	s := eng.NewState(clock.Now())
	s.Currency = 100

	eng.Click(testSession, s)
	_, err := eng.Purchase(testSession, s, model.KindUpgrade, "notepad", 1)
	require.NoError(t, err)

	events, err := eng.Telemetry.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	var types []telemetry.EventType
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	assert.Contains(t, types, telemetry.EventClick)
	assert.Contains(t, types, telemetry.EventPurchase)
}
