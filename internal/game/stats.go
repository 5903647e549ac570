package game

// DifficultyStats summarizes a player's past games at one difficulty.
type DifficultyStats struct {
	Difficulty  Difficulty `json:"difficulty"`
	GamesPlayed int        `json:"games_played"`
	BestScore   int        `json:"best_score"`
	BestLength  int        `json:"best_length"`
	TotalScore  int        `json:"total_score"`
}

// SummarizeStats aggregates history per difficulty. Difficulties with no
// games still appear, zeroed, so clients render a full table.
func SummarizeStats(history []HistoryEntry) []DifficultyStats {
	byLevel := make(map[Difficulty]*DifficultyStats, len(Difficulties()))
	out := make([]DifficultyStats, 0, len(Difficulties()))

	for _, d := range Difficulties() {
		byLevel[d] = &DifficultyStats{Difficulty: d}
	}

	for _, e := range history {
		st, ok := byLevel[e.Difficulty]
		if !ok {
			continue
		}
		st.GamesPlayed++
		st.TotalScore += e.Score
		if e.Score > st.BestScore {
			st.BestScore = e.Score
		}
		if e.SequenceLength > st.BestLength {
			st.BestLength = e.SequenceLength
		}
	}

	for _, d := range Difficulties() {
		out = append(out, *byLevel[d])
	}
	return out
}
