package game

// HistoryEntry is the slice of a persisted score record the achievement and
// stats evaluators care about.
type HistoryEntry struct {
	Score          int
	Difficulty     Difficulty
	SequenceLength int
}

// AchievementDef describes one unlockable achievement. Unlocks are evaluated
// over the player's full history, never inside the session state machine.
type AchievementDef struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`

	check func(h []HistoryEntry) bool
}

// Catalog lists all achievements in display order.
var Catalog = []AchievementDef{
	{
		Code:        "first_steps",
		Name:        "First Steps",
		Description: "Finish your first game",
		check:       func(h []HistoryEntry) bool { return len(h) >= 1 },
	},
	{
		Code:        "score_25",
		Name:        "Warming Up",
		Description: "Reach a score of 25 in a single game",
		check:       anyGame(func(e HistoryEntry) bool { return e.Score >= 25 }),
	},
	{
		Code:        "score_100",
		Name:        "Sharp Memory",
		Description: "Reach a score of 100 in a single game",
		check:       anyGame(func(e HistoryEntry) bool { return e.Score >= 100 }),
	},
	{
		Code:        "score_250",
		Name:        "Total Recall",
		Description: "Reach a score of 250 in a single game",
		check:       anyGame(func(e HistoryEntry) bool { return e.Score >= 250 }),
	},
	{
		Code:        "sequence_10",
		Name:        "Long Haul",
		Description: "Reach a sequence of 10 tiles",
		check:       anyGame(func(e HistoryEntry) bool { return e.SequenceLength >= 10 }),
	},
	{
		Code:        "sequence_20",
		Name:        "Marathon",
		Description: "Reach a sequence of 20 tiles",
		check:       anyGame(func(e HistoryEntry) bool { return e.SequenceLength >= 20 }),
	},
	{
		Code:        "hard_30",
		Name:        "No Safety Net",
		Description: "Score 30 or more on hard difficulty",
		check: anyGame(func(e HistoryEntry) bool {
			return e.Difficulty == DifficultyHard && e.Score >= 30
		}),
	},
	{
		Code:        "veteran",
		Name:        "Veteran",
		Description: "Finish 50 games",
		check:       func(h []HistoryEntry) bool { return len(h) >= 50 },
	},
	{
		Code:        "all_rounder",
		Name:        "All-Rounder",
		Description: "Finish a game on every difficulty",
		check: func(h []HistoryEntry) bool {
			seen := map[Difficulty]bool{}
			for _, e := range h {
				seen[e.Difficulty] = true
			}
			return len(seen) == len(Difficulties())
		},
	},
}

func anyGame(pred func(HistoryEntry) bool) func([]HistoryEntry) bool {
	return func(h []HistoryEntry) bool {
		for _, e := range h {
			if pred(e) {
				return true
			}
		}
		return false
	}
}

// EvaluateAchievements returns the codes of all achievements the given
// history satisfies.
func EvaluateAchievements(history []HistoryEntry) []string {
	var unlocked []string
	for _, a := range Catalog {
		if a.check(history) {
			unlocked = append(unlocked, a.Code)
		}
	}
	return unlocked
}
