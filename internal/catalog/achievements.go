package catalog

import "github.com/DilerFeed/CodeEmpire/internal/model"

func defaultAchievements() []Achievement {
	return []Achievement{
		{
			ID: "first_line", Name: "Hello World",
			Description: "Write your first line of code", Icon: "achievement_first.png",
			Unlocked: func(s *model.GameState) bool { return s.Currency >= 1 },
		},
		{
			ID: "hundred_lines", Name: "Code Apprentice",
			Description: "Write 100 lines of code", Icon: "achievement_100.png",
			Unlocked: func(s *model.GameState) bool { return s.Currency >= 100 },
			Rewards:  []Reward{{Kind: RewardClickFlat, Value: 1}},
		},
		{
			ID: "thousand_lines", Name: "Code Journeyman",
			Description: "Write 1,000 lines of code", Icon: "achievement_1k.png",
			Unlocked: func(s *model.GameState) bool { return s.Currency >= 1_000 },
			Rewards:  []Reward{{Kind: RewardClickFlat, Value: 5}},
		},
		{
			ID: "million_lines", Name: "Code Master",
			Description: "Write 1,000,000 lines of code", Icon: "achievement_1m.png",
			Unlocked: func(s *model.GameState) bool { return s.Currency >= 1_000_000 },
			Rewards:  []Reward{{Kind: RewardClickFlat, Value: 100}},
		},
		{
			ID: "first_upgrade", Name: "Tooling Up",
			Description: "Purchase your first upgrade", Icon: "achievement_upgrade.png",
			Unlocked: func(s *model.GameState) bool {
				for _, lvl := range s.UpgradeLevels {
					if lvl > 0 {
						return true
					}
				}
				return false
			},
		},
		{
			ID: "all_basic_upgrades", Name: "Well-Equipped",
			Description: "Get at least one level in each basic upgrade", Icon: "achievement_all_upgrades.png",
			Unlocked: func(s *model.GameState) bool {
				for _, id := range []string{"better_keyboard", "code_snippets", "ide_plugins"} {
					if s.UpgradeLevels[id] == 0 {
						return false
					}
				}
				return true
			},
			Rewards: []Reward{{Kind: RewardPassiveFlat, Value: 0.5}},
		},
		{
			ID: "max_upgrade", Name: "Maximized Efficiency",
			Description: "Max out any upgrade", Icon: "achievement_max.png",
			Unlocked: anyAtMaxLevel(model.KindUpgrade),
			Rewards:  []Reward{{Kind: RewardClickFlat, Value: 50}},
		},
		{
			ID: "first_asset", Name: "Team Builder",
			Description: "Hire your first team member", Icon: "achievement_team.png",
			Unlocked: func(s *model.GameState) bool {
				for _, lvl := range s.AssetLevels {
					if lvl > 0 {
						return true
					}
				}
				return false
			},
		},
		{
			ID: "all_basic_assets", Name: "Full Squad",
			Description: "Hire at least one of each basic asset", Icon: "achievement_all_assets.png",
			Unlocked: func(s *model.GameState) bool {
				for _, id := range []string{"intern", "junior_dev", "senior_dev"} {
					if s.AssetLevels[id] == 0 {
						return false
					}
				}
				return true
			},
			Rewards: []Reward{{Kind: RewardClickFlat, Value: 10}},
		},
		{
			ID: "max_asset", Name: "HR Master",
			Description: "Max out any passive asset", Icon: "achievement_max_asset.png",
			Unlocked: anyAtMaxLevel(model.KindAsset),
			Rewards:  []Reward{{Kind: RewardPassiveMult, Value: 1.5}},
		},
		{
			ID: "first_prestige", Name: "Reborn Coder",
			Description: "Prestige for the first time", Icon: "achievement_prestige.png",
			Unlocked: func(s *model.GameState) bool { return s.PrestigeLevel >= 1 },
			Rewards:  []Reward{{Kind: RewardPrestigeDelta, Value: 0.1}},
		},
		{
			ID: "five_prestiges", Name: "Code Immortal",
			Description: "Prestige five times", Icon: "achievement_prestige5.png",
			Unlocked: func(s *model.GameState) bool { return s.PrestigeLevel >= 5 },
			Rewards:  []Reward{{Kind: RewardPrestigeDelta, Value: 0.5}},
		},
		{
			ID: "speed_demon", Name: "Speed Demon",
			Description: "Reach 1,000 lines per click", Icon: "achievement_speed.png",
			Unlocked: func(s *model.GameState) bool { return s.ClickPower >= 1_000 },
			Rewards:  []Reward{{Kind: RewardClickMult, Value: 1.25}},
		},
		{
			ID: "passive_master", Name: "Passive Income Master",
			Description: "Reach 1,000 lines per second", Icon: "achievement_passive.png",
			Unlocked: func(s *model.GameState) bool { return s.PassiveRate >= 1_000 },
			Rewards:  []Reward{{Kind: RewardPassiveMult, Value: 2}},
		},
		{
			ID: "keyboard_warrior", Name: "Keyboard Warrior",
			Description: "Click 1,000 times", Icon: "achievement_clicks.png",
			Unlocked: func(s *model.GameState) bool { return s.Stats.TotalClicks >= 1_000 },
			Rewards:  []Reward{{Kind: RewardClickMult, Value: 1.1}},
		},
		{
			ID: "overnight_coder", Name: "Overnight Coder",
			Description: "Let passive income generate for at least 8 hours", Icon: "achievement_overnight.png",
			Unlocked: func(s *model.GameState) bool { return s.Stats.LongestSessionSecs >= 8*3600 },
			Rewards:  []Reward{{Kind: RewardPassiveMult, Value: 1.2}},
		},
	}
}

// anyAtMaxLevel builds a predicate that is true once any entry of the given
// kind sits at its max level. The catalog the state was built from and the
// default catalog share entry ids, so the max levels are looked up from the
// defaults.
func anyAtMaxLevel(kind model.PurchaseKind) func(*model.GameState) bool {
	entries := defaultUpgrades()
	if kind == model.KindAsset {
		entries = defaultAssets()
	}
	maxByID := make(map[string]int, len(entries))
	for _, e := range entries {
		maxByID[e.ID] = e.MaxLevel
	}
	return func(s *model.GameState) bool {
		levels := s.UpgradeLevels
		if kind == model.KindAsset {
			levels = s.AssetLevels
		}
		for id, lvl := range levels {
			if max, ok := maxByID[id]; ok && lvl >= max {
				return true
			}
		}
		return false
	}
}
