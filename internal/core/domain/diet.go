package domain

import "strings"

var ErrUnknownDietGoal = validationError("diet goal must be one of Muscle Gain, Fat Loss or Maintenance")

const (
	DietGoalMuscleGain  = "Muscle Gain"
	DietGoalFatLoss     = "Fat Loss"
	DietGoalMaintenance = "Maintenance"
)

// DietGoals lists the goal categories every catalog must cover, and the only ones it may hold.
var DietGoals = []string{DietGoalMuscleGain, DietGoalFatLoss, DietGoalMaintenance}

func IsDietGoal(goal string) bool {
	switch goal {
	case DietGoalMuscleGain, DietGoalFatLoss, DietGoalMaintenance:
		return true
	}
	return false
}

type Meal struct {
	Name     string `json:"name" toml:"name"`
	Calories int    `json:"calories" toml:"calories"`
	Protein  int    `json:"protein" toml:"protein"`
	Carbs    int    `json:"carbs" toml:"carbs"`
	Fats     int    `json:"fats" toml:"fats"`
}

type DietPlanTemplate struct {
	Goal  string `json:"goal" toml:"goal"`
	Price int    `json:"price" toml:"price"`
	Meals []Meal `json:"meals" toml:"meals"`
}

type PlanSummary struct {
	TotalCalories int `json:"totalCalories"`
	TotalProtein  int `json:"totalProtein"`
	TotalCarbs    int `json:"totalCarbs"`
	TotalFats     int `json:"totalFats"`
}

func (t *DietPlanTemplate) Summarize() PlanSummary {
	var s PlanSummary
	for _, m := range t.Meals {
		s.TotalCalories += m.Calories
		s.TotalProtein += m.Protein
		s.TotalCarbs += m.Carbs
		s.TotalFats += m.Fats
	}
	return s
}

// DietCatalog is the read-only set of templates keyed by goal category.
type DietCatalog map[string]*DietPlanTemplate

// Select looks a template up by its exact goal key. There is no fallback template.
// The result is a copy; the catalog itself is never handed out.
func (c DietCatalog) Select(goal string) (*DietPlanTemplate, error) {
	goal = strings.TrimSpace(goal)
	if !IsDietGoal(goal) {
		return nil, ErrUnknownDietGoal
	}
	t, ok := c[goal]
	if !ok {
		return nil, ErrUnknownDietGoal
	}
	return t.clone(), nil
}

func (t *DietPlanTemplate) clone() *DietPlanTemplate {
	out := *t
	out.Meals = append([]Meal(nil), t.Meals...)
	return &out
}
