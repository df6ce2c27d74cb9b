package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceFromEnv_Defaults(t *testing.T) {
	cfg := BalanceFromEnv()
	assert.Equal(t, Default(), cfg)
}

func TestBalanceFromEnv_DifficultyPresets(t *testing.T) {
	t.Setenv("CODEEMPIRE_DIFFICULTY", "casual")
	assert.Equal(t, Casual(), BalanceFromEnv())

	t.Setenv("CODEEMPIRE_DIFFICULTY", "hard")
	assert.Equal(t, Hard(), BalanceFromEnv())

	// Unknown presets fall through to the default curve.
	t.Setenv("CODEEMPIRE_DIFFICULTY", "nightmare")
	assert.Equal(t, Default(), BalanceFromEnv())
}

func TestBalanceFromEnv_Overrides(t *testing.T) {
	t.Setenv("CODEEMPIRE_CLICK_BASE_VALUE", "2.5")
	t.Setenv("CODEEMPIRE_GROWTH_FACTOR", "1.25")
	t.Setenv("CODEEMPIRE_EVENT_CHANCE", "0.5")

	cfg := BalanceFromEnv()
	assert.InDelta(t, 2.5, cfg.ClickBaseValue, 1e-9)
	assert.InDelta(t, 1.25, cfg.GrowthFactor, 1e-9)
	assert.InDelta(t, 0.5, cfg.EventChance, 1e-9)
	assert.InDelta(t, Default().PrestigeRequirement, cfg.PrestigeRequirement, 1e-9)
}

func TestBalanceFromEnv_RejectsOutOfRangeValues(t *testing.T) {
	t.Setenv("CODEEMPIRE_GROWTH_FACTOR", "0.9") // must exceed 1
	t.Setenv("CODEEMPIRE_EVENT_CHANCE", "1.5")  // must stay under 1
	t.Setenv("CODEEMPIRE_CLICK_BASE_VALUE", "not-a-number")

	assert.Equal(t, Default(), BalanceFromEnv())
}

func TestServerFromEnv_Defaults(t *testing.T) {
	cfg, err := ServerFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.True(t, cfg.PersistSaves)
	assert.False(t, cfg.CookieSecure)
}

func TestServerFromEnv_Overrides(t *testing.T) {
	t.Setenv("CODEEMPIRE_ADDR", ":9000")
	t.Setenv("CODEEMPIRE_PERSIST", "false")
	t.Setenv("CODEEMPIRE_COOKIE_SECURE", "true")

	cfg, err := ServerFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.False(t, cfg.PersistSaves)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1"
upgrades:
  - id: rubber_duck
    name: Rubber Duck
    base_cost: 15
    effect: 0.5
    max_level: 100
    tier: 1
themes:
  - threshold: 0
    name: basement
`), 0o644))

	cf, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, cf.Upgrades, 1)
	assert.Equal(t, "rubber_duck", cf.Upgrades[0].ID)
	assert.InDelta(t, 15.0, cf.Upgrades[0].BaseCost, 1e-9)
	require.Len(t, cf.Themes, 1)
	assert.Equal(t, "basement", cf.Themes[0].Name)
	assert.Empty(t, cf.Assets)
}

func TestLoadCatalogFile_Errors(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("upgrades: {not: a list}"), 0o644))
	_, err = LoadCatalogFile(bad)
	assert.Error(t, err)
}
