package domain

import (
	"math"
	"strings"
	"time"
)

var (
	ErrNegativeMetric = validationError("progress values cannot be negative")
	ErrInvalidWindow  = validationError("since window must be a positive number of days")
)

// ProgressOrderField is the document field history is sorted on.
const ProgressOrderField = "date"

type ProgressEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Date         time.Time `json:"date"`
	WeightKg     float64   `json:"weight"`
	ChestCm      float64   `json:"chest"`
	HeightCm     float64   `json:"height"`
	BodyFatPct   float64   `json:"bodyFat"`
	FitnessScore int       `json:"fitnessScore"`
	BMI          float64   `json:"bmi"`
	Notes        string    `json:"notes"`
}

func NewProgressEntry(userID string, m Measurements, score int, bmi float64, at time.Time) (*ProgressEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}

	e := &ProgressEntry{
		UserID:       userID,
		Date:         at.UTC(),
		WeightKg:     m.WeightKg,
		ChestCm:      m.ChestCm,
		HeightCm:     m.HeightCm,
		BodyFatPct:   m.BodyFatPct,
		FitnessScore: score,
		BMI:          bmi,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the entered measurements only. The derived score may be
// negative for valid inputs and is stored as calculated.
func (e *ProgressEntry) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return ErrMissingUserID
	}
	if e.WeightKg < 0 || e.ChestCm < 0 || e.HeightCm < 0 || e.BodyFatPct < 0 {
		return ErrNegativeMetric
	}
	return nil
}

// ToDocument stores the date as Unix milliseconds so every adapter orders it numerically.
func (e *ProgressEntry) ToDocument() Document {
	return Document{
		"userId":       e.UserID,
		"date":         e.Date.UnixMilli(),
		"weight":       e.WeightKg,
		"chest":        e.ChestCm,
		"height":       e.HeightCm,
		"bodyFat":      e.BodyFatPct,
		"fitnessScore": e.FitnessScore,
		"bmi":          e.BMI,
		"notes":        e.Notes,
	}
}

func ProgressEntryFromRecord(userID string, rec *Record) *ProgressEntry {
	doc := rec.Data
	return &ProgressEntry{
		ID:           rec.Key,
		UserID:       userID,
		Date:         doc.Instant("date"),
		WeightKg:     doc.Float("weight"),
		ChestCm:      doc.Float("chest"),
		HeightCm:     doc.Float("height"),
		BodyFatPct:   doc.Float("bodyFat"),
		FitnessScore: doc.Int("fitnessScore"),
		BMI:          doc.Float("bmi"),
		Notes:        doc.String("notes"),
	}
}

// SinceCutoff returns the inclusive lower bound of a day-count window ending at now.
func SinceCutoff(now time.Time, days int) (time.Time, error) {
	if days <= 0 {
		return time.Time{}, ErrInvalidWindow
	}
	return now.UTC().Add(-time.Duration(days) * 24 * time.Hour), nil
}

// FilterSince keeps entries dated on or after cutoff, preserving order.
func FilterSince(entries []*ProgressEntry, cutoff time.Time) []*ProgressEntry {
	out := make([]*ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// ProgressTrend compares the first and the latest entry of a window.
type ProgressTrend struct {
	Profile     *FitnessProfile `json:"profile"`
	Entries     int             `json:"entries"`
	First       *ProgressEntry  `json:"first,omitempty"`
	Latest      *ProgressEntry  `json:"latest,omitempty"`
	WeightDelta float64         `json:"weightDelta"`
	BMIDelta    float64         `json:"bmiDelta"`
	ScoreDelta  int             `json:"fitnessScoreDelta"`
}

func NewProgressTrend(profile *FitnessProfile, entries []*ProgressEntry) *ProgressTrend {
	t := &ProgressTrend{Profile: profile, Entries: len(entries)}
	if len(entries) == 0 {
		return t
	}

	t.First = entries[0]
	t.Latest = entries[len(entries)-1]
	t.WeightDelta = roundTenth(t.Latest.WeightKg - t.First.WeightKg)
	t.BMIDelta = roundTenth(t.Latest.BMI - t.First.BMI)
	t.ScoreDelta = t.Latest.FitnessScore - t.First.FitnessScore
	return t
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
