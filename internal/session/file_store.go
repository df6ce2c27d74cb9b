package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/DilerFeed/CodeEmpire/internal/model"
)

type fileState struct {
	Sessions map[string]*model.GameState `json:"sessions"`
}

// FileStore persists every session in one JSON file under the data dir,
// rewritten whole on each save. Good enough for a single-process server;
// anything bigger is out of scope here.
type FileStore struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	st := &FileStore{
		path: filepath.Join(dataDir, "sessions.json"),
		s:    fileState{Sessions: map[string]*model.GameState{}},
	}
	if err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

func (f *FileStore) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.s = fileState{Sessions: map[string]*model.GameState{}}
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Sessions == nil {
		loaded.Sessions = map[string]*model.GameState{}
	}
	f.s = loaded
	return nil
}

func (f *FileStore) saveLocked() error {
	b, err := json.MarshalIndent(f.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o644)
}

func (f *FileStore) Load(_ context.Context, id string) (*model.GameState, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.s.Sessions[id]
	if !ok {
		return nil, false, nil
	}
	return s.Clone(), true, nil
}

func (f *FileStore) Save(_ context.Context, id string, s *model.GameState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.Sessions[id] = s.Clone()
	return f.saveLocked()
}

func (f *FileStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.s.Sessions, id)
	return f.saveLocked()
}

func (f *FileStore) List(_ context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := make([]string, 0, len(f.s.Sessions))
	for id := range f.s.Sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
