package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/carquiz/pkg/quiz"
)

// MaxScoreRecords bounds the stored history; older records are dropped first.
const MaxScoreRecords = 100

const (
	scoresObject   = "scores"
	scoresProperty = "history"
)

// ScoreRecord is one finished session.
type ScoreRecord struct {
	ID         string    `yaml:"id"`
	Difficulty string    `yaml:"difficulty"`
	Correct    int       `yaml:"correct"`
	Total      int       `yaml:"total"`
	Accuracy   float64   `yaml:"accuracy"`
	PlayedAt   time.Time `yaml:"playedAt"`
}

// AccuracyText formats the record's accuracy like quiz.Result.
func (r ScoreRecord) AccuracyText() string {
	return quiz.FormatAccuracy(r.Accuracy)
}

type scoreBookData struct {
	Records []ScoreRecord `yaml:"records"`
}

// ScoreBook keeps the history of finished sessions.
// With a nil gdata manager the history lives in memory for the current run.
type ScoreBook struct {
	gdataManager *gdata.Manager
	data         scoreBookData
	log          *zap.Logger
}

// NewScoreBook creates a score book and loads the saved history.
func NewScoreBook(gdataManager *gdata.Manager, log *zap.Logger) *ScoreBook {
	if log == nil {
		log = zap.NewNop()
	}
	sb := &ScoreBook{gdataManager: gdataManager, log: log.Named("scores")}
	if err := sb.Load(); err != nil {
		sb.log.Warn("failed to load score history", zap.Error(err))
	}
	return sb
}

// Load reads the history from gdata.
func (sb *ScoreBook) Load() error {
	sb.data = scoreBookData{}
	if sb.gdataManager == nil || !sb.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	raw, err := sb.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load score history: %w", err)
	}
	var data scoreBookData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to unmarshal score history: %w", err)
	}
	sb.data = data
	return nil
}

// Save writes the history to gdata.
func (sb *ScoreBook) Save() error {
	if sb.gdataManager == nil {
		return nil
	}
	raw, err := yaml.Marshal(sb.data)
	if err != nil {
		return fmt.Errorf("failed to marshal score history: %w", err)
	}
	if err := sb.gdataManager.SaveObjectProp(scoresObject, scoresProperty, raw); err != nil {
		return fmt.Errorf("failed to save score history: %w", err)
	}
	return nil
}

// Record appends a finished session and returns the stored record.
func (sb *ScoreBook) Record(res quiz.Result, playedAt time.Time) ScoreRecord {
	rec := ScoreRecord{
		ID:         uuid.NewString(),
		Difficulty: string(res.Difficulty),
		Correct:    res.Correct,
		Total:      res.Total,
		Accuracy:   res.Accuracy,
		PlayedAt:   playedAt.UTC(),
	}
	sb.data.Records = append(sb.data.Records, rec)
	if n := len(sb.data.Records); n > MaxScoreRecords {
		sb.data.Records = append([]ScoreRecord(nil), sb.data.Records[n-MaxScoreRecords:]...)
	}
	sb.log.Info("session recorded",
		zap.String("id", rec.ID),
		zap.String("difficulty", rec.Difficulty),
		zap.Int("correct", rec.Correct),
		zap.Int("total", rec.Total),
	)
	return rec
}

// Records returns the history, oldest first.
func (sb *ScoreBook) Records() []ScoreRecord {
	return append([]ScoreRecord(nil), sb.data.Records...)
}

// Best returns the highest-accuracy record for d. Ties go to the earlier record.
func (sb *ScoreBook) Best(d quiz.Difficulty) (ScoreRecord, bool) {
	var best ScoreRecord
	found := false
	for _, r := range sb.data.Records {
		if r.Difficulty != string(d) {
			continue
		}
		if !found || r.Accuracy > best.Accuracy {
			best = r
			found = true
		}
	}
	return best, found
}
