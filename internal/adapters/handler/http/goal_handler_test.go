package http_test

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

func TestCreateGoal(t *testing.T) {
	api := setupAPI(t, nil)
	tok := api.token("u1", domain.RoleMember)

	t.Run("Success: 201 Created with absolute target", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/goals", tok, `{"goalName": "Lose weight", "goalType": "weight", "targetValue": -5}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		goal := decode[map[string]any](t, w)
		assert.Equal(t, 5.0, goal["targetValue"])
		assert.Equal(t, false, goal["completed"])
		assert.NotEmpty(t, goal["id"])
	})

	t.Run("Fail: 400 when target is missing", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/goals", tok, `{"goalName": "Run"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "target")
	})

	t.Run("Fail: 400 on unknown type", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/goals", tok, `{"goalName": "Run", "goalType": "yoga", "targetValue": 1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on malformed JSON", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/goals", tok, `{"goalName": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGoalLifecycle(t *testing.T) {
	api := setupAPI(t, nil)
	tok := api.token("u1", domain.RoleMember)

	w := api.do(http.MethodPost, "/api/v1/goals", tok, `{"goalName": "10k steps", "goalType": "steps", "targetValue": 10000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[map[string]any](t, w)["id"].(string)

	w = api.do(http.MethodPost, "/api/v1/goals/"+id+"/toggle", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, w)["completed"])

	w = api.do(http.MethodGet, "/api/v1/goals", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	goals := decode[[]map[string]any](t, w)
	require.Len(t, goals, 1)
	assert.Equal(t, true, goals[0]["completed"])

	w = api.do(http.MethodGet, "/api/v1/goals", api.token("u2", domain.RoleMember), nil)
	assert.Empty(t, decode[[]map[string]any](t, w), "goals are scoped to their owner")

	w = api.do(http.MethodDelete, "/api/v1/goals/"+id, tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodPost, "/api/v1/goals/"+id+"/toggle", tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodDelete, "/api/v1/goals/"+id, tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(api.metrics.CounterGoalToggles))
}
