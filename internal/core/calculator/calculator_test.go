package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/calculator"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

func TestFitnessScore(t *testing.T) {
	t.Run("Success: Applies the linear formula", func(t *testing.T) {
		score, err := calculator.FitnessScore(80, 100, 30, 180, 16)
		require.NoError(t, err)
		assert.Equal(t, 40, score)

		score, err = calculator.FitnessScore(70, 90, 25, 170, 22)
		require.NoError(t, err)
		assert.Equal(t, 38, score)
	})

	t.Run("Success: Deterministic for the same inputs", func(t *testing.T) {
		first, err := calculator.FitnessScore(72.5, 98, 31, 178, 18)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			again, err := calculator.FitnessScore(72.5, 98, 31, 178, 18)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	tests := []struct {
		name                           string
		weight, chest, age, h, bodyFat float64
	}{
		{"Fail: Zero age would divide by zero", 70, 90, 0, 170, 20},
		{"Fail: Missing weight", 0, 90, 25, 170, 20},
		{"Fail: Negative chest", 70, -1, 25, 170, 20},
		{"Fail: Missing height", 70, 90, 25, 0, 20},
		{"Fail: Missing body fat", 70, 90, 25, 170, 0},
		{"Fail: NaN input", math.NaN(), 90, 25, 170, 20},
		{"Fail: Infinite input", 70, math.Inf(1), 25, 170, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.FitnessScore(tt.weight, tt.chest, tt.age, tt.h, tt.bodyFat)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, err, domain.ErrInvalidMeasurement)
		})
	}
}

func TestBMI(t *testing.T) {
	t.Run("Success: Rounds to one decimal", func(t *testing.T) {
		bmi, err := calculator.BMI(70, 175)
		require.NoError(t, err)
		assert.Equal(t, 22.9, bmi)
	})

	t.Run("Success: Exact value", func(t *testing.T) {
		bmi, err := calculator.BMI(100, 200)
		require.NoError(t, err)
		assert.Equal(t, 25.0, bmi)
	})

	t.Run("Fail: Zero height", func(t *testing.T) {
		_, err := calculator.BMI(70, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCalorieTarget(t *testing.T) {
	base := 10*70 + 6.25*170 - 5*25 + 5.0
	assert.Equal(t, 1642.5, base)

	tests := []struct {
		goal string
		want int
	}{
		{domain.DietGoalMuscleGain, 2471},
		{domain.DietGoalFatLoss, 1571},
		{domain.DietGoalMaintenance, 1971},
		{"Something Else", 1971},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, calculator.CalorieTarget(70, 25, tt.goal))
		})
	}

	t.Run("Height is pinned regardless of user", func(t *testing.T) {
		assert.Equal(t, 170, calculator.AssumedHeightCm)
	})
}

func TestRecompute(t *testing.T) {
	t.Run("Success: Returns score and BMI together", func(t *testing.T) {
		m := domain.Measurements{WeightKg: 70, ChestCm: 90, AgeYears: 25, HeightCm: 175, BodyFatPct: 22}

		metrics, err := calculator.Recompute(m)
		require.NoError(t, err)

		score, _ := calculator.FitnessScore(70, 90, 25, 175, 22)
		bmi, _ := calculator.BMI(70, 175)
		assert.Equal(t, score, metrics.FitnessScore)
		assert.Equal(t, bmi, metrics.BMI)
	})

	t.Run("Fail: Propagates validation error", func(t *testing.T) {
		_, err := calculator.Recompute(domain.Measurements{WeightKg: 70})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
