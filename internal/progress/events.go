package progress

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/model"
)

// ErrEventNotFound means the event id is not currently active. Expired events
// are pruned before completion attempts, so a late claim lands here too.
var ErrEventNotFound = errors.New("event not active")

// SpawnRandomEvent rolls for a special event. A single roll in [0,1) both
// decides the trigger (roll < chance) and picks the event: the winning slice
// of the roll maps uniformly onto the event list, which keeps the whole spawn
// reproducible from one injected number. Only one event may be active at a
// time. Returns the spawned event, or nil.
func (t Tracker) SpawnRandomEvent(s *model.GameState, roll float64, now time.Time) *model.ActiveEvent {
	if len(s.ActiveEvents) > 0 {
		return nil
	}
	p := t.Economy.Balance.EventChance
	if p <= 0 || roll >= p || len(t.Catalog.Events) == 0 {
		return nil
	}
	idx := int(roll / p * float64(len(t.Catalog.Events)))
	if idx >= len(t.Catalog.Events) {
		idx = len(t.Catalog.Events) - 1
	}
	def := t.Catalog.Events[idx]

	ev := model.ActiveEvent{EventID: def.ID, Name: def.Name}
	if def.TargetFactor > 0 {
		// Goal events capture their target at spawn time.
		target := s.Currency * def.TargetFactor
		ev.Target = &target
		ev.EndTime = now.Add(def.TimeLimit)
	} else {
		ev.EndTime = now.Add(t.Economy.Balance.EventDefaultWindow)
	}
	s.ActiveEvents = append(s.ActiveEvents, ev)
	out := ev
	return &out
}

// CompleteEvent resolves an active event by id, applies its reward and
// removes it from the active list.
func (t Tracker) CompleteEvent(s *model.GameState, eventID string, now time.Time) (*model.ActiveEvent, error) {
	ev := s.ActiveEventByID(eventID)
	if ev == nil {
		return nil, ErrEventNotFound
	}
	def, ok := t.Catalog.Event(ev.EventID)
	if !ok {
		return nil, ErrEventNotFound
	}
	ev.Completed = true
	t.applyEventReward(s, def.Reward, ev, now)
	done := *ev
	pruneCompleted(s)
	return &done, nil
}

// CompletePurchaseTriggered resolves the active purchase-completed event, if
// any. Upgrade purchases call this so that a pending review finishes the
// moment the player ships more code.
func (t Tracker) CompletePurchaseTriggered(s *model.GameState, now time.Time) *model.ActiveEvent {
	for i := range s.ActiveEvents {
		ev := &s.ActiveEvents[i]
		if ev.Completed {
			continue
		}
		def, ok := t.Catalog.Event(ev.EventID)
		if !ok || !def.OnPurchase {
			continue
		}
		ev.Completed = true
		t.applyEventReward(s, def.Reward, ev, now)
		done := *ev
		pruneCompleted(s)
		return &done
	}
	return nil
}

func (t Tracker) applyEventReward(s *model.GameState, r catalog.EventReward, ev *model.ActiveEvent, now time.Time) {
	if r.MultKind != "" {
		s.TempMultipliers[multiplierID()] = model.TempMultiplier{
			Kind:    r.MultKind,
			Value:   r.MultValue,
			EndTime: now.Add(r.Duration),
		}
	}
	if r.UnlockID != "" {
		if ev.Target != nil && s.Currency < *ev.Target {
			return
		}
		// The unlock and its currency bonus pay out once.
		if !s.HasSpecialUnlock(r.UnlockID) {
			s.SpecialUnlocks = append(s.SpecialUnlocks, r.UnlockID)
			s.Currency += s.Currency * r.CurrencyPct
		}
	}
}

// PruneExpired drops active events whose window has closed without
// completion. Settlement runs this every pass, so expired events never
// linger for a late claim.
func (t Tracker) PruneExpired(s *model.GameState, now time.Time) []model.ActiveEvent {
	var expired []model.ActiveEvent
	kept := s.ActiveEvents[:0]
	for _, ev := range s.ActiveEvents {
		if !ev.Completed && now.After(ev.EndTime) {
			expired = append(expired, ev)
			continue
		}
		kept = append(kept, ev)
	}
	s.ActiveEvents = kept
	return expired
}

func pruneCompleted(s *model.GameState) {
	kept := s.ActiveEvents[:0]
	for _, ev := range s.ActiveEvents {
		if !ev.Completed {
			kept = append(kept, ev)
		}
	}
	s.ActiveEvents = kept
}

func multiplierID() string {
	return "boost_" + ulid.Make().String()
}
