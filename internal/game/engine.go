// Package game holds the settlement engine: every player action lands here,
// gets the idle time since the last action settled first, then applies its
// own mutation and the follow-on checks (achievements, event spawn, theme).
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/config"
	"github.com/DilerFeed/CodeEmpire/internal/economy"
	"github.com/DilerFeed/CodeEmpire/internal/model"
	"github.com/DilerFeed/CodeEmpire/internal/progress"
	"github.com/DilerFeed/CodeEmpire/internal/telemetry"
)

var ErrInvalidBulkMode = errors.New("bulk mode must be 1, 10 or 100")

type Engine struct {
	Catalog   *catalog.Catalog
	Balance   config.Balance
	Economy   economy.Engine
	Progress  progress.Tracker
	Telemetry telemetry.Repository
	Clock     Clock
	Rand      Rand
}

func NewEngine(cat *catalog.Catalog, bal config.Balance, rec telemetry.Repository, clock Clock, rng Rand) Engine {
	econ := economy.New(cat, bal)
	return Engine{
		Catalog:   cat,
		Balance:   bal,
		Economy:   econ,
		Progress:  progress.New(cat, econ),
		Telemetry: rec,
		Clock:     clock,
		Rand:      rng,
	}
}

// ActionResult is what every mutating action returns: the state after the
// action plus everything that happened along the way, so the handler can
// surface spawns and unlocks without diffing states.
type ActionResult struct {
	State           *model.GameState         `json:"state"`
	ClickGain       float64                  `json:"click_gain,omitempty"`
	PassiveGain     float64                  `json:"passive_gain,omitempty"`
	Receipt         *economy.PurchaseReceipt `json:"receipt,omitempty"`
	PrestigeBonus   float64                  `json:"prestige_bonus,omitempty"`
	NewAchievements []string                 `json:"new_achievements,omitempty"`
	SpawnedEvent    *model.ActiveEvent       `json:"spawned_event,omitempty"`
	CompletedEvent  *model.ActiveEvent       `json:"completed_event,omitempty"`
	ExpiredEvents   []model.ActiveEvent      `json:"expired_events,omitempty"`
}

// NewState builds a fresh player state for the configured catalog.
func (e Engine) NewState(now time.Time) *model.GameState {
	s := model.NewGameState(e.Catalog.UpgradeIDs(), e.Catalog.AssetIDs(), e.Balance.ClickBaseValue, now)
	e.Economy.Recompute(s)
	s.Theme = e.Catalog.ThemeFor(s.Currency).Name
	return s
}

// settle brings the state up to now: session bookkeeping, expired-event
// pruning, then passive income for the elapsed gap. Runs before every
// mutating action so no action ever sees a stale balance.
func (e Engine) settle(session string, s *model.GameState, now time.Time, res *ActionResult) {
	e.trackSession(session, s, now)

	expired := e.Progress.PruneExpired(s, now)
	for _, ev := range expired {
		e.record(session, telemetry.EventSpecialExpired, telemetry.EventMetadata{"event_id": ev.EventID})
	}
	res.ExpiredEvents = expired

	elapsed := now.Sub(s.LastSettled)
	if elapsed > 0 {
		factor := progress.MultiplierFactor(s, model.MultPassive, now)
		earned := s.PassiveRate * factor * elapsed.Seconds()
		if earned > 0 {
			s.Currency += earned
			s.Stats.TotalLinesWritten += earned
			s.Stats.TotalLinesFromPassive += earned
			res.PassiveGain = earned
		}
	}
	s.LastSettled = now
}

// trackSession maintains the longest-session stat. A gap longer than the
// configured threshold closes the previous session and starts a new one.
func (e Engine) trackSession(session string, s *model.GameState, now time.Time) {
	gap := now.Sub(s.LastSettled)
	if gap > e.Balance.SessionGap {
		length := s.LastSettled.Sub(s.Stats.LastSessionStart).Seconds()
		if length > s.Stats.LongestSessionSecs {
			s.Stats.LongestSessionSecs = length
		}
		s.Stats.LastSessionStart = now
		e.record(session, telemetry.EventSessionStarted, nil)
		return
	}
	if length := now.Sub(s.Stats.LastSessionStart).Seconds(); length > s.Stats.LongestSessionSecs {
		s.Stats.LongestSessionSecs = length
	}
}

// finish runs the post-action checks shared by every mutating action:
// achievements, the event-spawn roll, and the currency-derived theme.
func (e Engine) finish(session string, s *model.GameState, now time.Time, res *ActionResult) {
	res.NewAchievements = e.Progress.EvaluateAchievements(s)
	for _, id := range res.NewAchievements {
		e.record(session, telemetry.EventAchievementUnlock, telemetry.EventMetadata{"achievement_id": id})
	}

	if e.Rand != nil {
		if spawned := e.Progress.SpawnRandomEvent(s, e.Rand.Float64(), now); spawned != nil {
			res.SpawnedEvent = spawned
			e.record(session, telemetry.EventSpecialSpawned, telemetry.EventMetadata{"event_id": spawned.EventID})
		}
	}

	e.applyTheme(session, s)
	res.State = s
}

func (e Engine) applyTheme(session string, s *model.GameState) {
	theme := e.Catalog.ThemeFor(s.Currency).Name
	if theme != s.Theme {
		s.Theme = theme
		e.record(session, telemetry.EventThemeChanged, telemetry.EventMetadata{"theme": theme})
	}
}

// Click settles idle time, then credits one click at the current click power
// times any live click boosts.
func (e Engine) Click(session string, s *model.GameState) ActionResult {
	now := e.now()
	var res ActionResult
	e.settle(session, s, now, &res)

	factor := progress.MultiplierFactor(s, model.MultClick, now)
	gain := s.ClickPower * factor
	s.Currency += gain
	s.Stats.TotalClicks++
	s.Stats.TotalLinesWritten += gain
	s.Stats.TotalLinesFromClicks += gain
	res.ClickGain = gain

	e.record(session, telemetry.EventClick, telemetry.EventMetadata{"gain": gain})
	e.finish(session, s, now, &res)
	return res
}

// Purchase settles, then buys count levels of the entry. A count of zero
// falls back to the player's bulk mode for that kind. Upgrade purchases also
// resolve any pending purchase-completed special event.
func (e Engine) Purchase(session string, s *model.GameState, kind model.PurchaseKind, entryID string, count int) (ActionResult, error) {
	now := e.now()
	var res ActionResult
	e.settle(session, s, now, &res)

	if count <= 0 {
		count = s.BulkModes[kind]
		if count <= 0 {
			count = 1
		}
	}

	receipt, err := e.Economy.Purchase(s, kind, entryID, count)
	if err != nil {
		res.State = s
		return res, err
	}
	res.Receipt = &receipt

	if kind == model.KindUpgrade {
		if done := e.Progress.CompletePurchaseTriggered(s, now); done != nil {
			res.CompletedEvent = done
			e.record(session, telemetry.EventSpecialCompleted, telemetry.EventMetadata{"event_id": done.EventID})
		}
	}

	e.record(session, telemetry.EventPurchase, telemetry.EventMetadata{
		"kind":       string(kind),
		"entry_id":   entryID,
		"count":      receipt.Count,
		"total_cost": receipt.TotalCost,
	})
	e.finish(session, s, now, &res)
	return res, nil
}

// Prestige settles, then resets progress in exchange for a permanent
// multiplier bonus. The returned state is a fresh one; achievements and
// lifetime stats carry over.
func (e Engine) Prestige(session string, s *model.GameState) (ActionResult, error) {
	now := e.now()
	var res ActionResult
	e.settle(session, s, now, &res)

	next, bonus, err := e.Economy.Prestige(s, now)
	if err != nil {
		res.State = s
		return res, err
	}
	res.PrestigeBonus = bonus

	e.record(session, telemetry.EventPrestige, telemetry.EventMetadata{
		"level": next.PrestigeLevel,
		"bonus": bonus,
	})
	e.finish(session, next, now, &res)
	return res, nil
}

// CompleteEvent resolves an active special event by id. It prunes expired
// events first, so a claim after the window closes reports not-found, but it
// does not settle passive income; only the listed player actions do that.
func (e Engine) CompleteEvent(session string, s *model.GameState, eventID string) (ActionResult, error) {
	now := e.now()
	var res ActionResult

	expired := e.Progress.PruneExpired(s, now)
	for _, ev := range expired {
		e.record(session, telemetry.EventSpecialExpired, telemetry.EventMetadata{"event_id": ev.EventID})
	}
	res.ExpiredEvents = expired

	done, err := e.Progress.CompleteEvent(s, eventID, now)
	if err != nil {
		res.State = s
		return res, err
	}
	res.CompletedEvent = done
	e.record(session, telemetry.EventSpecialCompleted, telemetry.EventMetadata{"event_id": done.EventID})

	res.NewAchievements = e.Progress.EvaluateAchievements(s)
	for _, id := range res.NewAchievements {
		e.record(session, telemetry.EventAchievementUnlock, telemetry.EventMetadata{"achievement_id": id})
	}
	e.applyTheme(session, s)
	res.State = s
	return res, nil
}

// SetBulkMode stores the default purchase quantity for one entry kind.
func (e Engine) SetBulkMode(session string, s *model.GameState, kind model.PurchaseKind, mode int) (ActionResult, error) {
	if mode != 1 && mode != 10 && mode != 100 {
		return ActionResult{State: s}, ErrInvalidBulkMode
	}
	if s.BulkModes == nil {
		s.BulkModes = make(map[model.PurchaseKind]int)
	}
	s.BulkModes[kind] = mode
	e.record(session, telemetry.EventBulkModeChanged, telemetry.EventMetadata{"kind": string(kind), "mode": mode})
	return ActionResult{State: s}, nil
}

// Reconcile replaces the server state with a client-submitted one, the way
// an offline-capable client syncs back up. Unknown catalog ids are dropped,
// derived values are recomputed server-side and a future-dated settle time
// is pulled back to now so the timeline never runs ahead of the server
// clock. A pre-dated settle time is accepted as-is: it reads as idle time
// and earns passive income on the next settle, the same trust the plain
// currency field already gets.
func (e Engine) Reconcile(session string, submitted *model.GameState) ActionResult {
	now := e.now()
	s := submitted.Clone()

	s.UpgradeLevels = filterLevels(s.UpgradeLevels, e.Catalog.UpgradeIDs())
	s.AssetLevels = filterLevels(s.AssetLevels, e.Catalog.AssetIDs())
	if s.RewardClickMult <= 0 {
		s.RewardClickMult = 1
	}
	if s.RewardPassiveMult <= 0 {
		s.RewardPassiveMult = 1
	}
	if s.PrestigeMultiplier <= 0 {
		s.PrestigeMultiplier = 1
	}
	if s.LastSettled.After(now) || s.LastSettled.IsZero() {
		s.LastSettled = now
	}
	if s.Stats.LastSessionStart.IsZero() {
		s.Stats.LastSessionStart = now
	}
	if s.BulkModes == nil {
		s.BulkModes = make(map[model.PurchaseKind]int)
	}
	if s.TempMultipliers == nil {
		s.TempMultipliers = make(map[string]model.TempMultiplier)
	}

	e.Economy.Recompute(s)
	e.applyTheme(session, s)
	e.record(session, telemetry.EventReconcile, telemetry.EventMetadata{"currency": s.Currency})
	return ActionResult{State: s}
}

// Reset discards the state and starts over from scratch.
func (e Engine) Reset(session string) ActionResult {
	now := e.now()
	s := e.NewState(now)
	e.record(session, telemetry.EventReset, nil)
	return ActionResult{State: s}
}

func filterLevels(levels map[string]int, validIDs []string) map[string]int {
	out := make(map[string]int, len(validIDs))
	valid := make(map[string]bool, len(validIDs))
	for _, id := range validIDs {
		valid[id] = true
	}
	for id, lvl := range levels {
		if valid[id] && lvl >= 0 {
			out[id] = lvl
		}
	}
	for _, id := range validIDs {
		if _, ok := out[id]; !ok {
			out[id] = 0
		}
	}
	return out
}

// StatsReport is the read-only lifetime summary behind the stats endpoint.
type StatsReport struct {
	Currency           float64     `json:"currency"`
	ClickPower         float64     `json:"click_power"`
	PassiveRate        float64     `json:"passive_rate"`
	PrestigeLevel      int         `json:"prestige_level"`
	PrestigeMultiplier float64     `json:"prestige_multiplier"`
	Theme              string      `json:"theme"`
	Achievements       int         `json:"achievements_unlocked"`
	AchievementsTotal  int         `json:"achievements_total"`
	AchievementPct     float64     `json:"achievement_percentage"`
	AvgLinesPerClick   float64     `json:"average_lines_per_click"`
	TotalPlaytime      string      `json:"total_playtime"`
	Stats              model.Stats `json:"stats"`
}

func (e Engine) StatsReport(s *model.GameState) StatsReport {
	rep := StatsReport{
		Currency:           s.Currency,
		ClickPower:         s.ClickPower,
		PassiveRate:        s.PassiveRate,
		PrestigeLevel:      s.PrestigeLevel,
		PrestigeMultiplier: s.PrestigeMultiplier,
		Theme:              s.Theme,
		Achievements:       len(s.UnlockedAchievements),
		AchievementsTotal:  len(e.Catalog.Achievements),
		TotalPlaytime:      formatPlaytime(s.Stats.LongestSessionSecs),
		Stats:              s.Stats,
	}
	if rep.AchievementsTotal > 0 {
		rep.AchievementPct = float64(rep.Achievements) / float64(rep.AchievementsTotal) * 100
	}
	if s.Stats.TotalClicks > 0 {
		rep.AvgLinesPerClick = s.Stats.TotalLinesFromClicks / float64(s.Stats.TotalClicks)
	}
	return rep
}

func formatPlaytime(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}

// PrestigePreview reports what a prestige would yield right now, without
// settling or mutating anything.
func (e Engine) PrestigePreview(s *model.GameState) economy.PrestigePreview {
	return e.Economy.PrestigePreview(s)
}

func (e Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e Engine) record(session string, t telemetry.EventType, md telemetry.EventMetadata) {
	if e.Telemetry == nil {
		return
	}
	_ = e.Telemetry.RecordEvent(session, t, md)
}
