// Package calculator holds the pure formulas that turn body measurements into
// derived fitness metrics. Nothing here touches storage.
package calculator

import (
	"math"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

// AssumedHeightCm is the fixed height used by CalorieTarget regardless of the
// user's real height.
const AssumedHeightCm = 170

type Metrics struct {
	FitnessScore int     `json:"fitnessScore"`
	BMI          float64 `json:"bmi"`
} //@name Metrics

// FitnessScore = round(((weight + chest) / age) * 5 + height * 0.1 - bodyFat * 0.5).
func FitnessScore(weightKg, chestCm, ageYears, heightCm, bodyFatPct float64) (int, error) {
	m := domain.Measurements{
		WeightKg:   weightKg,
		ChestCm:    chestCm,
		AgeYears:   ageYears,
		HeightCm:   heightCm,
		BodyFatPct: bodyFatPct,
	}
	if err := m.Validate(); err != nil {
		return 0, err
	}

	score := ((weightKg+chestCm)/ageYears)*5 + heightCm*0.1 - bodyFatPct*0.5
	return int(roundHalfUp(score)), nil
}

// BMI is weight / (height in meters)^2, rounded to one decimal place.
func BMI(weightKg, heightCm float64) (float64, error) {
	if !positive(weightKg) || !positive(heightCm) {
		return 0, domain.ErrInvalidMeasurement
	}

	meters := heightCm / 100
	return roundHalfUp(weightKg/(meters*meters)*10) / 10, nil
}

// CalorieTarget applies the simplified Mifflin-St Jeor estimate with the height
// pinned to AssumedHeightCm. Unknown goals get the maintenance figure.
func CalorieTarget(weightKg, ageYears float64, goal string) int {
	base := 10*weightKg + 6.25*AssumedHeightCm - 5*ageYears + 5

	switch goal {
	case domain.DietGoalMuscleGain:
		return int(roundHalfUp(base*1.2 + 500))
	case domain.DietGoalFatLoss:
		return int(roundHalfUp(base*1.2 - 400))
	default:
		return int(roundHalfUp(base * 1.2))
	}
}

// Recompute derives every metric for a set of measurements in one call.
func Recompute(m domain.Measurements) (Metrics, error) {
	score, err := FitnessScore(m.WeightKg, m.ChestCm, m.AgeYears, m.HeightCm, m.BodyFatPct)
	if err != nil {
		return Metrics{}, err
	}

	bmi, err := BMI(m.WeightKg, m.HeightCm)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{FitnessScore: score, BMI: bmi}, nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// roundHalfUp rounds .5 toward +Inf, matching how the scores were always shown.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
