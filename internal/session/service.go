package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/DilerFeed/CodeEmpire/internal/game"
	"github.com/DilerFeed/CodeEmpire/internal/model"
)

const CookieName = "codeempire_session"

// Service is the load-modify-save layer between the HTTP handlers and the
// engine. A per-session mutex serializes updates, so two tabs hammering the
// same session never interleave a read-modify-write.
type Service struct {
	store        Store
	engine       game.Engine
	cookieSecure bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store Store, engine game.Engine, cookieSecure bool) *Service {
	if engine.Clock == nil {
		engine.Clock = game.RealClock{}
	}
	return &Service{
		store:        store,
		engine:       engine,
		cookieSecure: cookieSecure,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *Service) Engine() game.Engine { return s.engine }

// SessionID returns the request's session id, minting one and setting the
// cookie when absent.
func (s *Service) SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := ulid.Make().String()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Service) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Get loads the state for a session, creating and persisting a fresh one on
// first contact.
func (s *Service) Get(ctx context.Context, id string) (*model.GameState, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	st, ok, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		st = s.engine.NewState(s.engine.Clock.Now())
		if err := s.store.Save(ctx, id, st); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Update runs one engine action against the session's state under its lock
// and persists the result. The action's result state is saved even when the
// action reports a domain error, because the settlement that ran before the
// rejected mutation is still real progress.
func (s *Service) Update(ctx context.Context, id string, fn func(*model.GameState) (game.ActionResult, error)) (game.ActionResult, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	st, ok, err := s.store.Load(ctx, id)
	if err != nil {
		return game.ActionResult{}, err
	}
	if !ok {
		st = s.engine.NewState(s.engine.Clock.Now())
	}

	res, actErr := fn(st)
	if res.State != nil {
		if err := s.store.Save(ctx, id, res.State); err != nil {
			return game.ActionResult{}, err
		}
	}
	return res, actErr
}

// Delete removes a session's state entirely.
func (s *Service) Delete(ctx context.Context, id string) error {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()
	return s.store.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}
