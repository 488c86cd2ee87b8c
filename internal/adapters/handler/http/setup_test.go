package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/catalog"
	adapterHTTP "github.com/comitanigiacomo/strivefit-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
	"github.com/comitanigiacomo/strivefit-engine/internal/telemetry/metrics"
)

type testAPI struct {
	t       *testing.T
	router  *gin.Engine
	tokens  *services.TokenService
	store   domain.RecordStore
	metrics *metrics.Manager
}

func setupAPI(t *testing.T, store domain.RecordStore) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if store == nil {
		store = repository.NewMemoryStore()
	}

	dietCatalog, err := catalog.LoadDefault()
	require.NoError(t, err)

	m, reg := metrics.NewTestManagerAndRegistry()
	tokens := services.NewTokenService("handler-test-secret-123", "strivefit-test", time.Hour)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		ProgressHandler:   adapterHTTP.NewProgressHandler(services.NewProgressService(store), m),
		GoalHandler:       adapterHTTP.NewGoalHandler(services.NewGoalService(store), m),
		AttendanceHandler: adapterHTTP.NewAttendanceHandler(services.NewAttendanceService(store), m),
		DietHandler:       adapterHTTP.NewDietHandler(services.NewDietService(dietCatalog)),
		TokenService:      tokens,
		Metrics:           m,
		Registry:          reg,
		StartTime:         time.Now(),
	})

	return &testAPI{t: t, router: router, tokens: tokens, store: store, metrics: m}
}

func (a *testAPI) token(userID, role string) string {
	a.t.Helper()

	tok, err := a.tokens.GenerateToken(domain.Actor{UserID: userID, Role: role})
	require.NoError(a.t, err)
	return tok
}

// do sends body as JSON (unless nil) with a bearer token (unless empty).
func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func measurementsBody() map[string]float64 {
	return map[string]float64{"weight": 80, "chest": 100, "age": 30, "height": 180, "bodyFat": 16}
}
