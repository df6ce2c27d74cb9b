package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DilerFeed/CodeEmpire/internal/model"
)

// VerifySaves parses the save file inside a data dir and returns the number
// of sessions it holds. Restore drills use it to prove the archive round-trip
// produced a loadable save, not just identical bytes.
func VerifySaves(dataDir string) (int, error) {
	path := filepath.Join(dataDir, "saves", "sessions.json")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var payload struct {
		Sessions map[string]*model.GameState `json:"sessions"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return 0, fmt.Errorf("save file unparseable: %w", err)
	}
	for id, s := range payload.Sessions {
		if s == nil {
			return 0, fmt.Errorf("session %s: empty state", id)
		}
		if s.Currency < 0 {
			return 0, fmt.Errorf("session %s: negative currency", id)
		}
	}
	return len(payload.Sessions), nil
}
