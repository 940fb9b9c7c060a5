package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/copyleftdev/FINNR/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Solver.MaxIterations = 100
	cfg.Solver.StepTolerance = 1e-9
	cfg.Solver.ResidualTolerance = 1e-9
	cfg.Solver.Window = 0.1

	r := chi.NewRouter()
	New(cfg, zap.NewNop()).RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestSolveBisection(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/solve", map[string]interface{}{
		"method":       "bisection",
		"coefficients": []float64{-2, 0, 1},
		"bracket":      [2]float64{1, 2},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got solveResponse
	decode(t, resp, &got)
	assert.InDelta(t, math.Sqrt2, got.Root, 1e-8)
	assert.Greater(t, got.Iterations, 0)
	assert.Greater(t, got.Evaluations, 0)
}

func TestSolveNewton(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/solve", map[string]interface{}{
		"method":       "newton_raphson_naive",
		"coefficients": []float64{-2, 0, 1},
		"guess":        1.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got solveResponse
	decode(t, resp, &got)
	assert.InDelta(t, math.Sqrt2, got.Root, 1e-8)
	assert.LessOrEqual(t, got.Iterations, 10)
}

func TestSolveNotABracket(t *testing.T) {
	ts := newTestServer(t)

	// x^2+1 has no real roots; [-1, 1] carries no sign change.
	resp := postJSON(t, ts.URL+"/api/v1/solve", map[string]interface{}{
		"method":       "false_position",
		"coefficients": []float64{1, 0, 1},
		"bracket":      [2]float64{-1, 1},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]apiError
	decode(t, resp, &got)
	assert.Equal(t, "not_a_bracket", got["error"].Kind)
}

func TestSolveValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"unknown method", map[string]interface{}{
			"method": "secant", "coefficients": []float64{-2, 0, 1}, "guess": 1.0,
		}},
		{"missing coefficients", map[string]interface{}{
			"method": "bisection", "bracket": [2]float64{1, 2},
		}},
		{"missing bracket", map[string]interface{}{
			"method": "bisection", "coefficients": []float64{-2, 0, 1},
		}},
		{"missing guess", map[string]interface{}{
			"method": "halley_naive", "coefficients": []float64{-2, 0, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/v1/solve", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSolveMaxIterationsIsUnprocessable(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/solve", map[string]interface{}{
		"method":         "bisection",
		"coefficients":   []float64{-2, 0, 1},
		"bracket":        [2]float64{1, 2},
		"max_iterations": 3,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var got map[string]apiError
	decode(t, resp, &got)
	assert.Equal(t, "max_iterations", got["error"].Kind)
}

func TestBrackets(t *testing.T) {
	ts := newTestServer(t)

	// (x-1)(x-2) = x^2 - 3x + 2 with roots at 1 and 2.
	resp := postJSON(t, ts.URL+"/api/v1/brackets", map[string]interface{}{
		"coefficients": []float64{2, -3, 1},
		"bounds":       [2]float64{0, 3},
		"window":       0.4,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got bracketsResponse
	decode(t, resp, &got)
	require.Len(t, got.Brackets, 2)
	assert.True(t, got.Brackets[0][0] <= 1 && 1 <= got.Brackets[0][1])
	assert.True(t, got.Brackets[1][0] <= 2 && 2 <= got.Brackets[1][1])
}

func TestBracketsInvalidBounds(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/brackets", map[string]interface{}{
		"coefficients": []float64{2, -3, 1},
		"bounds":       [2]float64{3, 0},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]apiError
	decode(t, resp, &got)
	assert.Equal(t, "invalid_bounds", got["error"].Kind)
}

func TestJSONRPCSolve(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/rpc", map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "rootfind.solve",
		"params": map[string]interface{}{
			"method":       "halley_naive",
			"coefficients": []float64{-2, 0, 1},
			"guess":        1.5,
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  *solveResponse  `json:"result"`
		Error   *rpcError       `json:"error"`
	}
	decode(t, resp, &got)
	require.Nil(t, got.Error)
	require.NotNil(t, got.Result)
	assert.Equal(t, "2.0", got.JSONRPC)
	assert.Equal(t, json.RawMessage("1"), got.ID)
	assert.InDelta(t, math.Sqrt2, got.Result.Root, 1e-8)
}

func TestJSONRPCBrackets(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/rpc", map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      "scan-1",
		"method":  "rootfind.brackets",
		"params": map[string]interface{}{
			"coefficients": []float64{2, -3, 1},
			"bounds":       [2]float64{0, 3},
			"window":       0.4,
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Result *bracketsResponse `json:"result"`
		Error  *rpcError         `json:"error"`
	}
	decode(t, resp, &got)
	require.Nil(t, got.Error)
	require.NotNil(t, got.Result)
	assert.Len(t, got.Result.Brackets, 2)
}

func TestJSONRPCErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		body     interface{}
		wantCode int
	}{
		{"wrong version", map[string]interface{}{
			"jsonrpc": "1.0", "id": 1, "method": "rootfind.solve",
		}, rpcInvalidRequest},
		{"unknown method", map[string]interface{}{
			"jsonrpc": "2.0", "id": 1, "method": "rootfind.bogus",
		}, rpcMethodNotFound},
		{"solver failure", map[string]interface{}{
			"jsonrpc": "2.0", "id": 1, "method": "rootfind.solve",
			"params": map[string]interface{}{
				"method":       "bisection",
				"coefficients": []float64{1, 0, 1},
				"bracket":      [2]float64{-1, 1},
			},
		}, rpcInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/rpc", tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var got struct {
				Error *rpcError `json:"error"`
			}
			decode(t, resp, &got)
			require.NotNil(t, got.Error)
			assert.Equal(t, tt.wantCode, got.Error.Code)
		})
	}
}
