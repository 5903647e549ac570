package game

import "testing"

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

func TestEvaluateAchievements(t *testing.T) {
	cases := []struct {
		name    string
		history []HistoryEntry
		want    []string
		without []string
	}{
		{
			name:    "empty history unlocks nothing",
			history: nil,
			without: []string{"first_steps"},
		},
		{
			name:    "single low game",
			history: []HistoryEntry{{Score: 3, Difficulty: DifficultyEasy, SequenceLength: 4}},
			want:    []string{"first_steps"},
			without: []string{"score_25", "sequence_10", "all_rounder"},
		},
		{
			name: "score thresholds",
			history: []HistoryEntry{
				{Score: 120, Difficulty: DifficultyMedium, SequenceLength: 18},
			},
			want:    []string{"score_25", "score_100", "sequence_10"},
			without: []string{"score_250", "sequence_20", "hard_30"},
		},
		{
			name: "hard mode threshold",
			history: []HistoryEntry{
				{Score: 31, Difficulty: DifficultyHard, SequenceLength: 9},
			},
			want:    []string{"hard_30", "score_25"},
			without: []string{"score_100"},
		},
		{
			name: "all difficulties",
			history: []HistoryEntry{
				{Score: 1, Difficulty: DifficultyEasy, SequenceLength: 1},
				{Score: 2, Difficulty: DifficultyMedium, SequenceLength: 1},
				{Score: 3, Difficulty: DifficultyHard, SequenceLength: 1},
			},
			want:    []string{"all_rounder"},
			without: []string{"veteran"},
		},
	}

	for _, tc := range cases {
		got := EvaluateAchievements(tc.history)
		for _, code := range tc.want {
			if !contains(got, code) {
				t.Errorf("%s: missing %q in %v", tc.name, code, got)
			}
		}
		for _, code := range tc.without {
			if contains(got, code) {
				t.Errorf("%s: unexpected %q in %v", tc.name, code, got)
			}
		}
	}
}

func TestVeteranAtFiftyGames(t *testing.T) {
	history := make([]HistoryEntry, 50)
	for i := range history {
		history[i] = HistoryEntry{Score: 1, Difficulty: DifficultyEasy, SequenceLength: 2}
	}

	if got := EvaluateAchievements(history[:49]); contains(got, "veteran") {
		t.Error("veteran unlocked at 49 games")
	}
	if got := EvaluateAchievements(history); !contains(got, "veteran") {
		t.Error("veteran not unlocked at 50 games")
	}
}

func TestSummarizeStats(t *testing.T) {
	history := []HistoryEntry{
		{Score: 6, Difficulty: DifficultyEasy, SequenceLength: 6},
		{Score: 2, Difficulty: DifficultyEasy, SequenceLength: 3},
		{Score: 30, Difficulty: DifficultyHard, SequenceLength: 8},
	}

	stats := SummarizeStats(history)
	if len(stats) != 3 {
		t.Fatalf("stats rows = %d; want one per difficulty", len(stats))
	}

	byLevel := map[Difficulty]DifficultyStats{}
	for _, st := range stats {
		byLevel[st.Difficulty] = st
	}

	easy := byLevel[DifficultyEasy]
	if easy.GamesPlayed != 2 || easy.BestScore != 6 || easy.BestLength != 6 || easy.TotalScore != 8 {
		t.Errorf("easy stats = %+v", easy)
	}

	medium := byLevel[DifficultyMedium]
	if medium.GamesPlayed != 0 || medium.BestScore != 0 {
		t.Errorf("medium stats = %+v; want zeroed row", medium)
	}

	hard := byLevel[DifficultyHard]
	if hard.GamesPlayed != 1 || hard.BestScore != 30 || hard.BestLength != 8 {
		t.Errorf("hard stats = %+v", hard)
	}
}
