package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liquiditylab/lcrsim/internal/application/report"
	"github.com/liquiditylab/lcrsim/pkg/adapters/storage/memory"
	api "github.com/liquiditylab/lcrsim/pkg/api/http"
	"github.com/liquiditylab/lcrsim/pkg/ports"
)

// stubMetrics keeps tests away from the process-global Prometheus registry
type stubMetrics struct{}

func (stubMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {}
func (stubMetrics) RecordRun(status string, rows int)                                      {}
func (stubMetrics) RecordDatabaseCheck(status string)                                      {}

// helper to set up router
func setupRouter(probe ports.DatabaseProbe, urlSet, nameSet bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()
	srv := api.NewServer(&api.Config{
		Port:            8000,
		DatabaseURLSet:  urlSet,
		DatabaseNameSet: nameSet,
		Generator:       report.NewGenerator(),
		Probe:           probe,
		Metrics:         stubMetrics{},
		Logger:          logger,
	})
	return srv.Router()
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postRun(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGreetings(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	w := get(router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hello from the LCR sandbox backend!", resp["message"])

	w = get(router, "/api/hello")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hello from the backend API!", resp["message"])
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	w := get(router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "lcrsim", resp["service"])
}

func TestRunReturnsRows(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	w := postRun(router, `{"from_date":"31AUG2019","lines":"6,17","country":"SG"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)

	assert.Equal(t, float64(6), resp.Rows[0]["LINE"])
	assert.Equal(t, float64(17), resp.Rows[1]["LINE"])

	for _, row := range resp.Rows {
		assert.Equal(t, "SG", row["COUNTRY"])
		assert.Equal(t, "31AUG2019", row["REPORT_DATE"])
		assert.Equal(t, "", row["PREV_DATE"])
		assert.IsType(t, float64(0), row["VALUE"])
		assert.Equal(t, "", row["PREV_VALUE"])
		assert.Equal(t, "", row["DELTA"])
	}
}

func TestRunRepeatsAreIdentical(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)
	body := `{"from_date":"31AUG2019","to_date":"31JUL2019","lines":"6,17","country":"SG"}`

	first := postRun(router, body)
	require.Equal(t, http.StatusOK, first.Code)

	second := postRun(router, body)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRunWithPrevDate(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	w := postRun(router, `{"from_date":"31AUG2019","to_date":"31JUL2019","lines":"6","country":"SG"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)

	row := resp.Rows[0]
	assert.Equal(t, "31JUL2019", row["PREV_DATE"])

	value, ok := row["VALUE"].(float64)
	require.True(t, ok)
	prev, ok := row["PREV_VALUE"].(float64)
	require.True(t, ok)
	delta, ok := row["DELTA"].(float64)
	require.True(t, ok)

	assert.InDelta(t, value-prev, delta, 1e-6)
}

func TestRunValidationFailures(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{
			name: "missing from_date",
			body: `{"lines":"6","country":"SG"}`,
			msg:  "from_date must be DDMMMYYYY, e.g., 31AUG2019",
		},
		{
			name: "bad to_date",
			body: `{"from_date":"31AUG2019","to_date":"yesterday","lines":"6","country":"SG"}`,
			msg:  "to_date must be DDMMMYYYY, e.g., 31JUL2019",
		},
		{
			name: "bad lines",
			body: `{"from_date":"31AUG2019","lines":"six","country":"SG"}`,
			msg:  "lines must be comma-separated integers, e.g., '6,17'",
		},
		{
			name: "bad country",
			body: `{"from_date":"31AUG2019","lines":"6","country":"Singapore"}`,
			msg:  "country must be ISO code like 'SG' or 'SGP'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRun(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
			assert.Equal(t, tt.msg, resp.Error.Message)
		})
	}
}

func TestRunRejectsMalformedJSON(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	w := postRun(router, `{"from_date":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestDiagnosticsNotConfigured(t *testing.T) {
	router := setupRouter(memory.NewProbe(ports.CheckResult{}), false, false)

	w := get(router, "/test")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"collections":[]`)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["backend"])
	assert.Equal(t, "not configured", resp["database"])
	assert.Equal(t, "not set", resp["database_url"])
	assert.Equal(t, "not set", resp["database_name"])
	assert.Equal(t, "not connected", resp["connection_status"])
}

func TestDiagnosticsConnected(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("collection_%02d", i+1)
	}
	probe := memory.NewProbe(ports.CheckResult{
		Configured:  true,
		Connected:   true,
		Collections: names,
	})
	router := setupRouter(probe, true, true)

	w := get(router, "/test")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "connected", resp["database"])
	assert.Equal(t, "set", resp["database_url"])
	assert.Equal(t, "set", resp["database_name"])
	assert.Equal(t, "connected", resp["connection_status"])

	cols, ok := resp["collections"].([]interface{})
	require.True(t, ok)
	assert.Len(t, cols, 10)
	assert.Equal(t, "collection_01", cols[0])
}

func TestDiagnosticsConnectError(t *testing.T) {
	probe := memory.NewProbe(ports.CheckResult{
		Configured: true,
		Err:        errors.New(strings.Repeat("x", 60)),
	})
	router := setupRouter(probe, true, true)

	w := get(router, "/test")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error: "+strings.Repeat("x", 50), resp["database"])
	assert.Equal(t, "not connected", resp["connection_status"])
}

func TestDiagnosticsListError(t *testing.T) {
	probe := memory.NewProbe(ports.CheckResult{
		Configured: true,
		Connected:  true,
		ListErr:    errors.New("unauthorized"),
	})
	router := setupRouter(probe, true, true)

	w := get(router, "/test")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "connected, list error: unauthorized", resp["database"])
	assert.Equal(t, "connected", resp["connection_status"])
	assert.Empty(t, resp["collections"])
}
