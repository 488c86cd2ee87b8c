package domain

import (
	"math"
	"strings"
	"unicode/utf8"
)

var (
	ErrGoalNameEmpty    = validationError("goal name cannot be empty")
	ErrGoalNameTooLong  = validationError("goal name is too long (max 100 chars)")
	ErrGoalTargetUnset  = validationError("goal target value is required")
	ErrInvalidGoalType  = validationError("invalid goal type (must be weight, steps, bodyFat, strength or cardio)")
	ErrGoalNotFound     = notFound("goal not found")
	ErrGoalTargetNotNum = validationError("goal target value must be a finite number")
)

const (
	GoalTypeWeight   = "weight"
	GoalTypeSteps    = "steps"
	GoalTypeBodyFat  = "bodyFat"
	GoalTypeStrength = "strength"
	GoalTypeCardio   = "cardio"
	MaxGoalNameLen   = 100
)

type Goal struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Name        string  `json:"goalName"`
	Type        string  `json:"goalType"`
	TargetValue float64 `json:"targetValue"`
	Completed   bool    `json:"completed"`
	Version     int     `json:"version"`
}

func isGoalType(t string) bool {
	switch t {
	case GoalTypeWeight, GoalTypeSteps, GoalTypeBodyFat, GoalTypeStrength, GoalTypeCardio:
		return true
	}
	return false
}

// NewGoal builds an incomplete goal. target is nil when the caller left it unset;
// any sign is accepted and stored as its absolute value.
func NewGoal(userID, name, goalType string, target *float64) (*Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGoalNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxGoalNameLen {
		return nil, ErrGoalNameTooLong
	}

	if target == nil {
		return nil, ErrGoalTargetUnset
	}
	if math.IsNaN(*target) || math.IsInf(*target, 0) {
		return nil, ErrGoalTargetNotNum
	}

	if goalType == "" {
		goalType = GoalTypeWeight
	}
	if !isGoalType(goalType) {
		return nil, ErrInvalidGoalType
	}

	return &Goal{
		UserID:      userID,
		Name:        name,
		Type:        goalType,
		TargetValue: math.Abs(*target),
		Completed:   false,
	}, nil
}

func (g *Goal) Toggle() {
	g.Completed = !g.Completed
}

func (g *Goal) ToDocument() Document {
	return Document{
		"goalName":    g.Name,
		"goalType":    g.Type,
		"targetValue": g.TargetValue,
		"completed":   g.Completed,
	}
}

func GoalFromRecord(userID string, rec *Record) *Goal {
	return &Goal{
		ID:          rec.Key,
		UserID:      userID,
		Name:        rec.Data.String("goalName"),
		Type:        rec.Data.String("goalType"),
		TargetValue: math.Abs(rec.Data.Float("targetValue")),
		Completed:   rec.Data.Bool("completed"),
		Version:     rec.Version,
	}
}
