package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
)

func ptr[T any](v T) *T {
	return &v
}

func TestGoalService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Stores absolute target and starts incomplete", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())

		goal, err := svc.Create(ctx, services.CreateGoalInput{
			UserID:      "u1",
			Name:        "Lose 5kg",
			Type:        domain.GoalTypeWeight,
			TargetValue: ptr(-5.0),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, goal.ID)
		assert.Equal(t, 5.0, goal.TargetValue)
		assert.False(t, goal.Completed)

		goals, err := svc.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, 5.0, goals[0].TargetValue)
		assert.Equal(t, "Lose 5kg", goals[0].Name)
	})

	t.Run("Fail: Empty name", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())

		_, err := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "  ", TargetValue: ptr(10.0)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Fail: Unset target", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())

		_, err := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "Run"})
		assert.ErrorIs(t, err, domain.ErrGoalTargetUnset)
	})

	t.Run("Fail: Store error is not a validation error", func(t *testing.T) {
		store := new(MockStore)
		svc := services.NewGoalService(store)

		store.On("Append", mock.Anything, domain.GoalCollection("u1"), mock.Anything).
			Return("", domain.StoreFailure("append", errors.New("disk full")))

		_, err := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "Run", TargetValue: ptr(5.0)})
		assert.ErrorIs(t, err, domain.ErrStore)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestGoalService_ToggleCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Toggling twice restores the original state", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())
		goal, err := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "10k steps", Type: domain.GoalTypeSteps, TargetValue: ptr(10000.0)})
		require.NoError(t, err)

		first, err := svc.ToggleCompletion(ctx, "u1", goal.ID)
		require.NoError(t, err)
		assert.True(t, first.Completed)

		second, err := svc.ToggleCompletion(ctx, "u1", goal.ID)
		require.NoError(t, err)
		assert.False(t, second.Completed)

		goals, _ := svc.ListByUserID(ctx, "u1")
		assert.False(t, goals[0].Completed)
		assert.Equal(t, 10000.0, goals[0].TargetValue)
	})

	t.Run("Success: Missing goal is a no-op", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())

		goal, err := svc.ToggleCompletion(ctx, "u1", "nope")
		assert.NoError(t, err)
		assert.Nil(t, goal)
	})

	t.Run("Success: Concurrent toggles are all applied", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())
		goal, err := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "Bench", Type: domain.GoalTypeStrength, TargetValue: ptr(100.0)})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = svc.ToggleCompletion(ctx, "u1", goal.ID)
			}()
		}
		wg.Wait()

		goals, err := svc.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, goals[0].Completed)
	})

	t.Run("Success: Retries after a version conflict", func(t *testing.T) {
		store := new(MockStore)
		svc := services.NewGoalService(store)
		col := domain.GoalCollection("u1")

		stale := &domain.Record{Key: "g1", Version: 1, Data: domain.Document{"goalName": "Run", "goalType": "cardio", "targetValue": 5.0, "completed": false}}
		fresh := &domain.Record{Key: "g1", Version: 2, Data: domain.Document{"goalName": "Run", "goalType": "cardio", "targetValue": 5.0, "completed": true}}

		store.On("Get", mock.Anything, col, "g1").Return(stale, nil).Once()
		store.On("PutIfVersion", mock.Anything, col, "g1", mock.Anything, 1).Return(domain.ErrConflict).Once()
		store.On("Get", mock.Anything, col, "g1").Return(fresh, nil).Once()
		store.On("PutIfVersion", mock.Anything, col, "g1", mock.Anything, 2).Return(nil).Once()

		goal, err := svc.ToggleCompletion(ctx, "u1", "g1")
		require.NoError(t, err)
		assert.False(t, goal.Completed)
		assert.Equal(t, 3, goal.Version)

		store.AssertExpectations(t)
	})

	t.Run("Fail: Gives up after repeated conflicts", func(t *testing.T) {
		store := new(MockStore)
		svc := services.NewGoalService(store)
		col := domain.GoalCollection("u1")

		rec := &domain.Record{Key: "g1", Version: 1, Data: domain.Document{"goalName": "Run", "completed": false}}
		store.On("Get", mock.Anything, col, "g1").Return(rec, nil)
		store.On("PutIfVersion", mock.Anything, col, "g1", mock.Anything, 1).Return(domain.ErrConflict)

		_, err := svc.ToggleCompletion(ctx, "u1", "g1")
		assert.ErrorIs(t, err, domain.ErrConflict)
		store.AssertNumberOfCalls(t, "PutIfVersion", 3)
	})
}

func TestGoalService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Delete then delete again", func(t *testing.T) {
		svc := services.NewGoalService(repository.NewMemoryStore())
		keep, _ := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "Keep", TargetValue: ptr(1.0)})
		drop, _ := svc.Create(ctx, services.CreateGoalInput{UserID: "u1", Name: "Drop", TargetValue: ptr(1.0)})

		require.NoError(t, svc.Delete(ctx, "u1", drop.ID))
		require.NoError(t, svc.Delete(ctx, "u1", drop.ID))
		require.NoError(t, svc.Delete(ctx, "u1", "never-existed"))

		goals, err := svc.ListByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, keep.ID, goals[0].ID)
	})
}
