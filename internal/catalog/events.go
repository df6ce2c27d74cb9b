package catalog

import (
	"time"

	"github.com/DilerFeed/CodeEmpire/internal/model"
)

// UnlockHackathonTrophy is the one-time unlock granted by winning a
// hackathon. Granting it is idempotent across repeated wins.
const UnlockHackathonTrophy = "hackathon_trophy"

func defaultEvents() []EventDef {
	return []EventDef{
		{
			ID:          "bug_found",
			Name:        "Bug Found!",
			Description: "A critical bug was found in your code. Fix it quickly!",
			Action:      "Click rapidly to fix",
			Reward: EventReward{
				MultKind:  model.MultClick,
				MultValue: 5,
				Duration:  10 * time.Second,
			},
		},
		{
			ID:          "code_review",
			Name:        "Code Review",
			Description: "Your code is being reviewed. Make improvements to impress your peers.",
			Action:      "Purchase an upgrade",
			OnPurchase:  true,
			Reward: EventReward{
				MultKind:  model.MultPassive,
				MultValue: 1.2,
				Duration:  30 * time.Second,
			},
		},
		{
			ID:           "hackathon",
			Name:         "Hackathon",
			Description:  "A coding hackathon is happening! Show off your skills!",
			Action:       "Reach target lines in time",
			TargetFactor: 1.2,
			TimeLimit:    60 * time.Second,
			Reward: EventReward{
				UnlockID:    UnlockHackathonTrophy,
				CurrencyPct: 0.1,
			},
		},
	}
}
