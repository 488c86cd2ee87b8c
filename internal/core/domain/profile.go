package domain

import (
	"math"
	"strings"
)

var (
	ErrMissingUserID      = validationError("user id is required")
	ErrInvalidMeasurement = validationError("weight, chest, age, height and body fat are required and must be positive numbers")
	ErrProfileNotFound    = notFound("fitness profile not found")
)

// Measurements are the raw body inputs a user submits.
type Measurements struct {
	WeightKg   float64 `json:"weight"`
	ChestCm    float64 `json:"chest"`
	AgeYears   float64 `json:"age"`
	HeightCm   float64 `json:"height"`
	BodyFatPct float64 `json:"bodyFat"`
}

func (m Measurements) Validate() error {
	for _, v := range []float64{m.WeightKg, m.ChestCm, m.AgeYears, m.HeightCm, m.BodyFatPct} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrInvalidMeasurement
		}
	}
	return nil
}

// FitnessProfile is the latest calculated state of a user. One per user, upserted.
type FitnessProfile struct {
	UserID       string  `json:"uid"`
	AgeYears     float64 `json:"age"`
	WeightKg     float64 `json:"weight"`
	HeightCm     float64 `json:"height"`
	ChestCm      float64 `json:"chest"`
	BodyFatPct   float64 `json:"bodyFat"`
	FitnessScore int     `json:"fitnessScore"`
}

func NewFitnessProfile(userID string, m Measurements, score int) (*FitnessProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &FitnessProfile{
		UserID:       userID,
		AgeYears:     m.AgeYears,
		WeightKg:     m.WeightKg,
		HeightCm:     m.HeightCm,
		ChestCm:      m.ChestCm,
		BodyFatPct:   m.BodyFatPct,
		FitnessScore: score,
	}, nil
}

func (p *FitnessProfile) ToDocument() Document {
	return Document{
		"uid":          p.UserID,
		"age":          p.AgeYears,
		"weight":       p.WeightKg,
		"height":       p.HeightCm,
		"chest":        p.ChestCm,
		"bodyFat":      p.BodyFatPct,
		"fitnessScore": p.FitnessScore,
	}
}

func FitnessProfileFromDocument(userID string, doc Document) *FitnessProfile {
	return &FitnessProfile{
		UserID:       userID,
		AgeYears:     doc.Float("age"),
		WeightKg:     doc.Float("weight"),
		HeightCm:     doc.Float("height"),
		ChestCm:      doc.Float("chest"),
		BodyFatPct:   doc.Float("bodyFat"),
		FitnessScore: doc.Int("fitnessScore"),
	}
}
