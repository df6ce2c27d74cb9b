// Package serverapp assembles the full HTTP handler: catalog, engine,
// session store, live hub, routes and middleware.
package serverapp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/catalog"
	"github.com/DilerFeed/CodeEmpire/internal/config"
	"github.com/DilerFeed/CodeEmpire/internal/game"
	"github.com/DilerFeed/CodeEmpire/internal/httpmw"
	"github.com/DilerFeed/CodeEmpire/internal/live"
	"github.com/DilerFeed/CodeEmpire/internal/server"
	"github.com/DilerFeed/CodeEmpire/internal/session"
	"github.com/DilerFeed/CodeEmpire/internal/telemetry"
	staticfiles "github.com/DilerFeed/CodeEmpire/static"
)

type Options struct {
	Server  config.Server
	Balance config.Balance
	Logger  *log.Logger

	// Clock and Rand default to the real ones; tests inject fakes.
	Clock game.Clock
	Rand  game.Rand
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = game.RealClock{}
	}
	if opts.Rand == nil {
		opts.Rand = game.NewRealRand(time.Now().UnixNano())
	}
	if strings.TrimSpace(opts.Server.DataDir) == "" {
		opts.Server.DataDir = "data"
	}

	cat := catalog.New()
	if opts.Server.CatalogPath != "" {
		cf, err := config.LoadCatalogFile(opts.Server.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat, err = catalog.FromConfig(cf)
		if err != nil {
			return nil, err
		}
		opts.Logger.Printf("catalog override loaded from %s", opts.Server.CatalogPath)
	}

	telRepo := telemetry.NewMemoryRepository()
	engine := game.NewEngine(cat, opts.Balance, telRepo, opts.Clock, opts.Rand)

	var store session.Store
	if opts.Server.PersistSaves {
		fs, err := session.NewFileStore(filepath.Join(opts.Server.DataDir, "saves"))
		if err != nil {
			return nil, err
		}
		store = fs
	} else {
		store = session.NewMemoryStore()
	}
	sessions := session.NewService(store, engine, opts.Server.CookieSecure)

	hub := live.NewHub(opts.Logger)
	go hub.Run()

	app := &server.App{
		Sessions:  sessions,
		Catalog:   cat,
		Telemetry: telRepo,
		Live:      hub,
		Logger:    opts.Logger,
		BootNow:   opts.Clock.Now(),
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.Server.DevStatic {
		staticHandler = http.FileServer(http.Dir("static"))
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, staticfiles.EmbeddedFS(), "index.html")
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "codeempire",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := sessions.List(context.Background()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "save storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "codeempire",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)
	server.RegisterAdminUI(mux, rr, portFromAddr(opts.Server.Addr))

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func portFromAddr(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
