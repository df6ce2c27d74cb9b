package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/economy"
	"github.com/DilerFeed/CodeEmpire/internal/game"
	"github.com/DilerFeed/CodeEmpire/internal/live"
	"github.com/DilerFeed/CodeEmpire/internal/model"
	"github.com/DilerFeed/CodeEmpire/internal/progress"
	"github.com/DilerFeed/CodeEmpire/internal/session"
	"github.com/DilerFeed/CodeEmpire/internal/telemetry"
)

// App holds everything the handlers depend on.
type App struct {
	Sessions  *session.Service
	Catalog   *catalog.Catalog
	Telemetry telemetry.Repository
	Live      *live.Hub
	Logger    *log.Logger

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// errStatus maps domain errors onto HTTP statuses. Anything unmapped is a
// server fault.
func errStatus(err error) int {
	switch {
	case errors.Is(err, economy.ErrUnknownEntry):
		return http.StatusNotFound
	case errors.Is(err, economy.ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, economy.ErrMaxLevelReached):
		return http.StatusConflict
	case errors.Is(err, economy.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, economy.ErrPrestigeTooEarly):
		return http.StatusConflict
	case errors.Is(err, progress.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidBulkMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func purchaseKind(s string) (model.PurchaseKind, bool) {
	switch model.PurchaseKind(s) {
	case model.KindUpgrade:
		return model.KindUpgrade, true
	case model.KindAsset:
		return model.KindAsset, true
	}
	return "", false
}

// catalogView is the marshal-safe projection of the catalog; achievement
// predicates stay server-side.
type catalogView struct {
	Upgrades     []catalog.Entry   `json:"upgrades"`
	Assets       []catalog.Entry   `json:"assets"`
	Themes       []catalog.Theme   `json:"themes"`
	Achievements []achievementView `json:"achievements"`
	Events       []eventView       `json:"events"`
}

type achievementView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type eventView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Action      string `json:"action"`
	OnPurchase  bool   `json:"on_purchase"`
}

func buildCatalogView(cat *catalog.Catalog) catalogView {
	out := catalogView{
		Upgrades: cat.Upgrades,
		Assets:   cat.Assets,
		Themes:   cat.Themes,
	}
	for _, a := range cat.Achievements {
		out.Achievements = append(out.Achievements, achievementView{
			ID: a.ID, Name: a.Name, Description: a.Description, Icon: a.Icon,
		})
	}
	for _, ev := range cat.Events {
		out.Events = append(out.Events, eventView{
			ID: ev.ID, Name: ev.Name, Description: ev.Description,
			Action: ev.Action, OnPurchase: ev.OnPurchase,
		})
	}
	return out
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	sessions := app.Sessions
	engine := sessions.Engine()

	// push mirrors the action result to any live subscribers.
	push := func(sid string, res game.ActionResult) {
		if app.Live != nil && res.State != nil {
			app.Live.Broadcast(sid, res)
		}
	}

	Handle(mux, rr, "GET /api/state", "Get current game state", "", func(w http.ResponseWriter, r *http.Request) {
		sid := sessions.SessionID(w, r)
		st, err := sessions.Get(r.Context(), sid)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, st)
	})

	Handle(mux, rr, "GET /api/catalog", "Get the upgrade/asset/theme catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, buildCatalogView(app.Catalog))
	})

	Handle(mux, rr, "POST /api/click", "Write some lines of code", `{}`, func(w http.ResponseWriter, r *http.Request) {
		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(st *model.GameState) (game.ActionResult, error) {
			return engine.Click(sid, st), nil
		})
		if err != nil {
			writeErr(w, errStatus(err), err.Error())
			return
		}
		push(sid, res)
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "POST /api/buy", "Buy upgrade or asset levels", `{"kind":"upgrades","id":"notepad","count":1}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Kind  string `json:"kind"`
			ID    string `json:"id"`
			Count int    `json:"count"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeErr(w, 400, "invalid json body")
			return
		}
		kind, ok := purchaseKind(body.Kind)
		if !ok {
			writeErr(w, 400, "kind must be \"upgrades\" or \"assets\"")
			return
		}
		if body.ID == "" {
			writeErr(w, 400, "id is required")
			return
		}

		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(st *model.GameState) (game.ActionResult, error) {
			return engine.Purchase(sid, st, kind, body.ID, body.Count)
		})
		if err != nil {
			writeErr(w, errStatus(err), err.Error())
			return
		}
		push(sid, res)
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "POST /api/prestige", "Reset progress for a permanent multiplier", `{}`, func(w http.ResponseWriter, r *http.Request) {
		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(st *model.GameState) (game.ActionResult, error) {
			return engine.Prestige(sid, st)
		})
		if err != nil {
			writeErr(w, errStatus(err), err.Error())
			return
		}
		push(sid, res)
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "GET /api/prestige/preview", "Preview the prestige bonus", "", func(w http.ResponseWriter, r *http.Request) {
		sid := sessions.SessionID(w, r)
		st, err := sessions.Get(r.Context(), sid)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, engine.PrestigePreview(st))
	})

	Handle(mux, rr, "POST /api/events/complete", "Complete an active special event", `{"event_id":"hackathon"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			EventID string `json:"event_id"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeErr(w, 400, "invalid json body")
			return
		}
		if body.EventID == "" {
			writeErr(w, 400, "event_id is required")
			return
		}

		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(st *model.GameState) (game.ActionResult, error) {
			return engine.CompleteEvent(sid, st, body.EventID)
		})
		if err != nil {
			writeErr(w, errStatus(err), err.Error())
			return
		}
		push(sid, res)
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "POST /api/bulk-mode", "Set the default purchase quantity", `{"kind":"upgrades","mode":10}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Kind string `json:"kind"`
			Mode int    `json:"mode"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeErr(w, 400, "invalid json body")
			return
		}
		kind, ok := purchaseKind(body.Kind)
		if !ok {
			writeErr(w, 400, "kind must be \"upgrades\" or \"assets\"")
			return
		}

		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(st *model.GameState) (game.ActionResult, error) {
			return engine.SetBulkMode(sid, st, kind, body.Mode)
		})
		if err != nil {
			writeErr(w, errStatus(err), err.Error())
			return
		}
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "POST /api/reconcile", "Sync a client-held state back to the server", `{"currency":123.4}`, func(w http.ResponseWriter, r *http.Request) {
		var submitted model.GameState
		if err := decodeJSON(r, &submitted); err != nil {
			writeErr(w, 400, "invalid json body")
			return
		}

		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(*model.GameState) (game.ActionResult, error) {
			return engine.Reconcile(sid, &submitted), nil
		})
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		push(sid, res)
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "GET /api/stats", "Lifetime stats summary", "", func(w http.ResponseWriter, r *http.Request) {
		sid := sessions.SessionID(w, r)
		st, err := sessions.Get(r.Context(), sid)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, engine.StatsReport(st))
	})

	Handle(mux, rr, "POST /api/reset", "Wipe the save and start over", `{}`, func(w http.ResponseWriter, r *http.Request) {
		sid := sessions.SessionID(w, r)
		res, err := sessions.Update(r.Context(), sid, func(*model.GameState) (game.ActionResult, error) {
			return engine.Reset(sid), nil
		})
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		push(sid, res)
		writeJSON(w, 200, res)
	})

	Handle(mux, rr, "GET /api/telemetry/stats", "Aggregate gameplay telemetry", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Telemetry == nil {
			writeErr(w, 404, "telemetry disabled")
			return
		}
		since := app.BootNow
		if v := r.URL.Query().Get("since"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				writeErr(w, 400, "since must be RFC3339")
				return
			}
			since = t
		}
		events, err := app.Telemetry.GetEvents(since, nil)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, stats)
	})

	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		if app.Live == nil {
			writeErr(w, 404, "live updates disabled")
			return
		}
		sid := sessions.SessionID(w, r)
		app.Live.ServeWS(sid, w, r)
	})
}
