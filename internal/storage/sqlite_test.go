package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveScore(t *testing.T, store *Store, gameID string, score int) string {
	t.Helper()

	session := NewSessionID()
	if _, err := store.SaveScore(ScoreEntry{SessionID: session, GameID: gameID, Score: score, Level: 1}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return session
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveScore(t, store, "wordhunt", 120)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("wordhunt")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected 120 after reopening, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "wordhunt", 100)
	saveScore(t, store, "wordhunt", 50)
	saveScore(t, store, "wordhunt", 200)
	saveScore(t, store, "wordhunt_endless", 500)

	scores, err := store.TopScores("wordhunt", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].Palette != "large" {
		t.Errorf("Expected default palette, got %q", scores[0].Palette)
	}

	endless, err := store.TopScores("wordhunt_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("wordhunt")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "wordhunt", 100)
	saveScore(t, store, "wordhunt", 300)
	saveScore(t, store, "wordhunt", 200)

	high, err = store.HighScore("wordhunt")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRejectsBadSession(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{SessionID: "not-a-uuid", GameID: "wordhunt", Score: 1}); err == nil {
		t.Error("Expected an error for an invalid session id")
	}
	if _, err := store.SaveLevelResult("", "wordhunt", "large", scoring.Breakdown{}); err == nil {
		t.Error("Expected an error for an empty session id")
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)
	session := NewSessionID()

	levels := []scoring.Breakdown{
		{Level: 1, WordsFound: 4, WordsTotal: 4, Accuracy: 100, Total: 900, Grade: scoring.GradeS, LevelTime: 25 * time.Second},
		{Level: 2, WordsFound: 3, WordsTotal: 4, Accuracy: 75, EffectiveCombo: 1, Total: 410, Grade: scoring.GradeC, LevelTime: 48500 * time.Millisecond},
	}
	for _, b := range levels {
		if _, err := store.SaveLevelResult(session, "wordhunt", "medium", b); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}
	if _, err := store.SaveLevelResult(NewSessionID(), "wordhunt", "", levels[0]); err != nil {
		t.Fatalf("SaveLevelResult() for another session failed: %v", err)
	}

	results, err := store.LevelResults(session)
	if err != nil {
		t.Fatalf("LevelResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	second := results[1]
	if second.Level != 2 || second.Grade != scoring.GradeC || second.Combo != 1 {
		t.Errorf("Unexpected second result: %+v", second)
	}
	if second.LevelTime != 48500*time.Millisecond {
		t.Errorf("Expected level time 48.5s, got %v", second.LevelTime)
	}
	if second.Palette != "medium" {
		t.Errorf("Expected palette medium, got %q", second.Palette)
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	totals, err := store.GetTotals()
	if err != nil {
		t.Fatalf("GetTotals() failed: %v", err)
	}
	if totals != (scoring.ProfileTotals{}) {
		t.Errorf("Expected empty totals, got %+v", totals)
	}

	session := saveScore(t, store, "wordhunt", 700)
	saveScore(t, store, "wordhunt_endless", 1200)
	store.SaveLevelResult(session, "wordhunt", "large", scoring.Breakdown{Level: 1, WordsFound: 4, Grade: scoring.GradeA})
	store.SaveLevelResult(session, "wordhunt", "large", scoring.Breakdown{Level: 2, WordsFound: 3, Grade: scoring.GradeB})

	totals, err = store.GetTotals()
	if err != nil {
		t.Fatalf("GetTotals() failed: %v", err)
	}

	expected := scoring.ProfileTotals{Games: 2, Levels: 2, WordsFound: 7, BestScore: 1200}
	if totals != expected {
		t.Errorf("GetTotals() = %+v, want %+v", totals, expected)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	session := saveScore(t, store, "wordhunt", 100)
	saveScore(t, store, "wordhunt", 200)
	saveScore(t, store, "wordhunt_endless", 300)
	store.SaveLevelResult(session, "wordhunt", "large", scoring.Breakdown{Level: 1, Grade: scoring.GradeF})

	if err := store.ClearScores("wordhunt"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("wordhunt", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	results, _ := store.LevelResults(session)
	if len(results) != 0 {
		t.Errorf("Expected level results to be cleared, got %d", len(results))
	}

	endless, _ := store.TopScores("wordhunt_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign scores")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{SessionID: NewSessionID(), GameID: "wordhunt", Score: 100, Level: 2})
	store.SaveScore(ScoreEntry{SessionID: NewSessionID(), GameID: "wordhunt", Score: 300, Level: 5})

	stats, err := store.GetGameStats("wordhunt")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 5 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
