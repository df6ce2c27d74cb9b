package config

import (
	"os"
	"strconv"
)

// BalanceFromEnv loads balance configuration from environment variables,
// falling back to defaults when a variable is unset or unparsable.
func BalanceFromEnv() Balance {
	// Preset modes win over individual overrides.
	if mode := os.Getenv("CODEEMPIRE_DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	cfg := Default()

	if val := getEnvFloat("CODEEMPIRE_CLICK_BASE_VALUE"); val > 0 {
		cfg.ClickBaseValue = val
	}
	if val := getEnvFloat("CODEEMPIRE_GROWTH_FACTOR"); val > 1 {
		cfg.GrowthFactor = val
	}
	if val := getEnvFloat("CODEEMPIRE_PRESTIGE_REQUIREMENT"); val > 0 {
		cfg.PrestigeRequirement = val
	}
	if val := getEnvFloat("CODEEMPIRE_PRESTIGE_BONUS_RATE"); val > 0 {
		cfg.PrestigeBonusRate = val
	}
	if val := getEnvFloat("CODEEMPIRE_EVENT_CHANCE"); val > 0 && val < 1 {
		cfg.EventChance = val
	}

	return cfg
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
