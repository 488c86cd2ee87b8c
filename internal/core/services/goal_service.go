package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

const maxToggleAttempts = 3

type GoalService struct {
	store domain.RecordStore
}

func NewGoalService(store domain.RecordStore) *GoalService {
	return &GoalService{
		store: store,
	}
}

type CreateGoalInput struct {
	UserID      string
	Name        string
	Type        string
	TargetValue *float64
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.UserID, input.Name, input.Type, input.TargetValue)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Append(ctx, domain.GoalCollection(input.UserID), goal.ToDocument())
	if err != nil {
		return nil, fmt.Errorf("goal service: create goal: %w", err)
	}

	goal.ID = id
	goal.Version = 1
	return goal, nil
}

func (s *GoalService) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	records, err := s.store.QueryOrdered(ctx, domain.GoalCollection(userID), "", domain.SortAsc)
	if err != nil {
		return nil, fmt.Errorf("goal service: list goals: %w", err)
	}

	goals := make([]*domain.Goal, 0, len(records))
	for _, rec := range records {
		goals = append(goals, domain.GoalFromRecord(userID, rec))
	}
	return goals, nil
}

// ToggleCompletion flips the completed flag. The write is conditional on the
// version that was read, and is retried on conflict, so two concurrent toggles
// both land. A missing goal is a no-op and returns (nil, nil).
func (s *GoalService) ToggleCompletion(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	collection := domain.GoalCollection(userID)

	for attempt := 1; ; attempt++ {
		rec, err := s.store.Get(ctx, collection, goalID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("goal service: load goal: %w", err)
		}

		goal := domain.GoalFromRecord(userID, rec)
		goal.Toggle()

		err = s.store.PutIfVersion(ctx, collection, goalID, goal.ToDocument(), rec.Version)
		switch {
		case err == nil:
			goal.Version = rec.Version + 1
			return goal, nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, nil
		case errors.Is(err, domain.ErrConflict) && attempt < maxToggleAttempts:
			continue
		default:
			return nil, fmt.Errorf("goal service: toggle goal: %w", err)
		}
	}
}

// Delete is a no-op when the goal is already gone.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	if userID == "" {
		return domain.ErrMissingUserID
	}

	if err := s.store.Delete(ctx, domain.GoalCollection(userID), goalID); err != nil {
		return fmt.Errorf("goal service: delete goal: %w", err)
	}
	return nil
}
