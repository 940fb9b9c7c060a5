// Package server exposes the root-finding library over HTTP and JSON-RPC.
//
// Functions arrive over the wire as polynomial coefficients (ascending degree
// order), the one function representation that round-trips through JSON and
// still supports analytic first and second derivatives for the derivative-
// based methods. Every solve is synchronous: solver runtime is bounded by
// max_iterations, so there is no job state to manage.
package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/copyleftdev/FINNR/internal/config"
	"github.com/copyleftdev/FINNR/internal/logging"
	"github.com/copyleftdev/FINNR/internal/metrics"
	"github.com/copyleftdev/FINNR/internal/rootfind"
	"github.com/copyleftdev/FINNR/internal/rootfind/bracket"
	"github.com/copyleftdev/FINNR/internal/rootfind/convergence"
	"github.com/copyleftdev/FINNR/internal/rootfind/solver"
)

// Solver method names accepted on the wire.
const (
	MethodBisection     = "bisection"
	MethodFalsePosition = "false_position"
	MethodNewton        = "newton_raphson_naive"
	MethodHalley        = "halley_naive"
)

// Server routes solve and bracket-scan requests to the rootfind packages.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a server with the given config and logger.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the REST and JSON-RPC endpoints on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/brackets", s.handleBrackets)
	})
	r.Post("/rpc", s.handleJSONRPC)
}

type solveRequest struct {
	// Method selects the solver; see the Method constants.
	Method string `json:"method"`
	// Coefficients define the polynomial, ascending degree order.
	Coefficients []float64 `json:"coefficients"`
	// Bracket is required by bisection and false_position.
	Bracket *[2]float64 `json:"bracket,omitempty"`
	// Guess is required by the naive derivative methods.
	Guess *float64 `json:"guess,omitempty"`

	MaxIterations     int     `json:"max_iterations,omitempty"`
	StepTolerance     float64 `json:"step_tolerance,omitempty"`
	ResidualTolerance float64 `json:"residual_tolerance,omitempty"`
}

type solveResponse struct {
	Root        float64 `json:"root"`
	Iterations  int     `json:"iterations"`
	Evaluations int     `json:"evaluations"`
}

type bracketsRequest struct {
	Coefficients []float64  `json:"coefficients"`
	Bounds       [2]float64 `json:"bounds"`
	Window       float64    `json:"window,omitempty"`
}

type bracketsResponse struct {
	Brackets [][2]float64 `json:"brackets"`
}

type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// countingPolicy decorates a convergence policy to record how many iterations
// ran. Solvers treat it like any other policy, which is the point: iteration
// accounting needs no solver support.
type countingPolicy struct {
	inner      convergence.Policy
	iterations int
}

func (p *countingPolicy) Converged(prevX, curX, fCur float64, iter int) bool {
	p.iterations = iter + 1
	return p.inner.Converged(prevX, curX, fCur, iter)
}

// solve runs a request against the solver packages and returns the result or
// a typed error from the rootfind taxonomy.
func (s *Server) solve(req *solveRequest) (*solveResponse, error) {
	if len(req.Coefficients) == 0 {
		return nil, errors.New("coefficients are required")
	}
	switch req.Method {
	case MethodBisection, MethodFalsePosition, MethodNewton, MethodHalley:
	default:
		// Rejected before the metrics block so arbitrary wire strings never
		// become label values.
		return nil, errors.New("unknown method: " + req.Method)
	}

	maxIter := req.MaxIterations
	if maxIter <= 0 {
		maxIter = s.cfg.Solver.MaxIterations
	}
	stepEps := req.StepTolerance
	if stepEps <= 0 {
		stepEps = s.cfg.Solver.StepTolerance
	}
	residualEps := req.ResidualTolerance
	if residualEps <= 0 {
		residualEps = s.cfg.Solver.ResidualTolerance
	}

	poly := rootfind.NewPolynomial(req.Coefficients)
	counted := rootfind.NewCounted(poly)
	policy := &countingPolicy{inner: convergence.Combined(stepEps, residualEps)}

	var (
		root float64
		err  error
	)
	switch req.Method {
	case MethodBisection, MethodFalsePosition:
		if req.Bracket == nil {
			return nil, errors.New("bracket is required for bracketing methods")
		}
		var br bracket.Bracket
		br, err = bracket.New(counted, req.Bracket[0], req.Bracket[1])
		if err == nil {
			if req.Method == MethodBisection {
				root, err = solver.Bisection(counted, br, maxIter, policy)
			} else {
				root, err = solver.FalsePosition(counted, br, maxIter, policy)
			}
		}
	case MethodNewton:
		if req.Guess == nil {
			return nil, errors.New("guess is required for derivative methods")
		}
		root, err = solver.NewtonRaphsonNaive(countedDiff{counted, poly}, *req.Guess, maxIter, policy)
	case MethodHalley:
		if req.Guess == nil {
			return nil, errors.New("guess is required for derivative methods")
		}
		root, err = solver.HalleyNaive(countedDiff{counted, poly}, *req.Guess, maxIter, policy)
	}

	metrics.Evaluations.WithLabelValues(req.Method).Observe(float64(counted.Evals()))
	metrics.Solves.WithLabelValues(req.Method, outcomeLabel(err)).Inc()
	if err != nil {
		return nil, err
	}
	metrics.Iterations.WithLabelValues(req.Method).Observe(float64(policy.iterations))

	return &solveResponse{
		Root:        root,
		Iterations:  policy.iterations,
		Evaluations: counted.Evals(),
	}, nil
}

// countedDiff routes plain evaluations through the counter while taking
// derivatives from the polynomial directly; derivative evaluations are not
// part of the f(x) count.
type countedDiff struct {
	counted *rootfind.Counted
	poly    rootfind.Polynomial
}

func (c countedDiff) Eval(x float64) float64   { return c.counted.Eval(x) }
func (c countedDiff) EvalD1(x float64) float64 { return c.poly.EvalD1(x) }
func (c countedDiff) EvalD2(x float64) float64 { return c.poly.EvalD2(x) }

// scan runs a bracket scan for the request.
func (s *Server) scan(req *bracketsRequest) (*bracketsResponse, error) {
	if len(req.Coefficients) == 0 {
		return nil, errors.New("coefficients are required")
	}

	bounds, err := bracket.NewBounds(req.Bounds[0], req.Bounds[1])
	if err != nil {
		return nil, err
	}
	window := req.Window
	if window <= 0 {
		window = math.Min(s.cfg.Solver.Window, bounds.Width())
	}

	gen, err := bracket.NewGenerator(rootfind.NewPolynomial(req.Coefficients), bounds, window)
	if err != nil {
		return nil, err
	}

	found := gen.All()
	metrics.BracketScans.Inc()
	metrics.BracketsFound.Add(float64(len(found)))

	resp := &bracketsResponse{Brackets: make([][2]float64, len(found))}
	for i, b := range found {
		resp.Brackets[i] = [2]float64{b.Lo(), b.Hi()}
	}
	return resp, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	resp, err := s.solve(&req)
	if err != nil {
		s.respondError(w, r, statusFor(err), err)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBrackets(w http.ResponseWriter, r *http.Request) {
	var req bracketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	resp, err := s.scan(&req)
	if err != nil {
		s.respondError(w, r, statusFor(err), err)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// statusFor maps the failure taxonomy to HTTP statuses: malformed inputs are
// the caller's configuration problem (400), while numerical failures on a
// well-formed request are unprocessable (422).
func statusFor(err error) int {
	switch {
	case errors.Is(err, rootfind.ErrMaxIterations),
		errors.Is(err, rootfind.ErrDerivativeTooSmall),
		errors.Is(err, rootfind.ErrNonFinite):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// outcomeLabel converts a solver result into a metrics label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, rootfind.ErrNotABracket):
		return "not_a_bracket"
	case errors.Is(err, rootfind.ErrMaxIterations):
		return "max_iterations"
	case errors.Is(err, rootfind.ErrDerivativeTooSmall):
		return "derivative_too_small"
	case errors.Is(err, rootfind.ErrNonFinite):
		return "non_finite"
	default:
		return "invalid_request"
	}
}

// kindLabel is the wire name of a failure, shared by REST and RPC responses.
func kindLabel(err error) string {
	if errors.Is(err, rootfind.ErrInvalidBounds) {
		return "invalid_bounds"
	}
	if errors.Is(err, rootfind.ErrInvalidWindow) {
		return "invalid_window"
	}
	return outcomeLabel(err)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.FromContext(r.Context()).Warn("request failed",
		zap.Int("status", status),
		zap.Error(err),
	)
	s.respondJSON(w, status, map[string]apiError{
		"error": {Kind: kindLabel(err), Message: err.Error()},
	})
}
