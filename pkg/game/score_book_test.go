package game

import (
	"testing"
	"time"

	"github.com/decker502/carquiz/pkg/quiz"
)

func TestScoreBookRecordAndBest(t *testing.T) {
	sb := NewScoreBook(nil, nil)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	sb.Record(quiz.Result{Difficulty: quiz.Easy, Correct: 1, Total: 2, Accuracy: 50}, now)
	best := sb.Record(quiz.Result{Difficulty: quiz.Easy, Correct: 2, Total: 2, Accuracy: 100}, now.Add(time.Minute))
	sb.Record(quiz.Result{Difficulty: quiz.Easy, Correct: 2, Total: 2, Accuracy: 100}, now.Add(2*time.Minute))
	sb.Record(quiz.Result{Difficulty: quiz.Hard, Correct: 0, Total: 3, Accuracy: 0}, now)

	got, ok := sb.Best(quiz.Easy)
	if !ok {
		t.Fatal("Best(easy) found nothing")
	}
	if got.ID != best.ID {
		t.Errorf("Best(easy) = %+v, want first 100%% record %s", got, best.ID)
	}
	if got.AccuracyText() != "100.00" {
		t.Errorf("AccuracyText() = %q", got.AccuracyText())
	}
	if _, ok := sb.Best(quiz.Normal); ok {
		t.Error("Best(normal) should be empty")
	}
	if len(sb.Records()) != 4 {
		t.Errorf("Records() len = %d, want 4", len(sb.Records()))
	}
}

func TestScoreBookRecordIDsAreUnique(t *testing.T) {
	sb := NewScoreBook(nil, nil)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		rec := sb.Record(quiz.Result{Difficulty: quiz.Normal, Total: 1}, time.Now())
		if rec.ID == "" || seen[rec.ID] {
			t.Fatalf("duplicate or empty id %q", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestScoreBookTrimsHistory(t *testing.T) {
	sb := NewScoreBook(nil, nil)
	for i := 0; i < MaxScoreRecords+5; i++ {
		sb.Record(quiz.Result{Difficulty: quiz.Easy, Correct: i, Total: 1000, Accuracy: quiz.Accuracy(i, 1000)}, time.Now())
	}
	records := sb.Records()
	if len(records) != MaxScoreRecords {
		t.Fatalf("Records() len = %d, want %d", len(records), MaxScoreRecords)
	}
	if records[0].Correct != 5 {
		t.Errorf("oldest kept record Correct = %d, want 5", records[0].Correct)
	}
}

func TestScoreBookPersists(t *testing.T) {
	manager := newTestGdataManager(t, "scores")

	sb1 := NewScoreBook(manager, nil)
	rec := sb1.Record(quiz.Result{Difficulty: quiz.Normal, Correct: 2, Total: 3, Accuracy: quiz.Accuracy(2, 3)}, time.Now())
	if err := sb1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sb2 := NewScoreBook(manager, nil)
	got, ok := sb2.Best(quiz.Normal)
	if !ok {
		t.Fatal("reloaded score book is empty")
	}
	if got.ID != rec.ID || got.Correct != 2 || got.Total != 3 {
		t.Errorf("reloaded record = %+v, want %+v", got, rec)
	}
	if got.AccuracyText() != "66.67" {
		t.Errorf("AccuracyText() = %q, want 66.67", got.AccuracyText())
	}
}
