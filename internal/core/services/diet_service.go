package services

import (
	"math"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/calculator"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

type DietService struct {
	catalog domain.DietCatalog
}

func NewDietService(catalog domain.DietCatalog) *DietService {
	return &DietService{
		catalog: catalog,
	}
}

type DietPlan struct {
	Goal             string                   `json:"goal"`
	Price            int                      `json:"price"`
	RequiredCalories int                      `json:"requiredCalories"`
	Template         *domain.DietPlanTemplate `json:"template"`
	Summary          domain.PlanSummary       `json:"summary"`
}

func (s *DietService) SelectPlan(goal string) (*domain.DietPlanTemplate, error) {
	return s.catalog.Select(goal)
}

func (s *DietService) SummarizePlan(t *domain.DietPlanTemplate) domain.PlanSummary {
	return t.Summarize()
}

// PlanFor is the full nutrition view: template, its totals, price and the
// calorie target for the given body stats.
func (s *DietService) PlanFor(goal string, weightKg, ageYears float64) (*DietPlan, error) {
	if !finitePositive(weightKg) || !finitePositive(ageYears) {
		return nil, domain.ErrInvalidMeasurement
	}

	template, err := s.SelectPlan(goal)
	if err != nil {
		return nil, err
	}

	return &DietPlan{
		Goal:             template.Goal,
		Price:            template.Price,
		RequiredCalories: calculator.CalorieTarget(weightKg, ageYears, template.Goal),
		Template:         template,
		Summary:          s.SummarizePlan(template),
	}, nil
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
