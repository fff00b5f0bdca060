// Package cvrp - solve orchestration.
//
// The solver is a capability behind a narrow interface: submit a frozen
// model, receive a status and (maybe) an assignment. The orchestrator
// owns outcome classification so the formulation stays fully decoupled
// from whichever engine is plugged in. One submit per call, no retries;
// timeout/cancellation policy belongs to the caller's context.

package cvrp

import (
	"context"
	"fmt"
)

// Outcome is the collaborator's raw reply: a status, the achieved
// objective and one 0/1 value per arc-variable id. Values is meaningful
// only for StatusOptimal and StatusFeasible.
type Outcome struct {
	Status    Status
	Objective int64
	Values    []bool
}

// Solver is the external integer-program collaborator. Implementations
// receive a read-only Model and must return an error only for transport
// or internal failures — infeasibility and timeouts are statuses, not
// errors. The call blocks until a terminal status or ctx expiry.
type Solver interface {
	Solve(ctx context.Context, m *Model) (Outcome, error)
}

// Solution is the decoded result of a successful solve: the achieved
// objective and every selected arc, immutable once produced.
type Solution struct {
	// Status is StatusOptimal or StatusFeasible for a usable solution;
	// on ErrNoSolution it carries the negative status instead.
	Status Status

	// Objective is the total traveled distance of the selected arcs.
	Objective int64

	// Arcs lists every directed pair (i, j) with x[i][j] == 1, ordered
	// by (From, To).
	Arcs []Arc

	n int // node count, retained for route decoding
}

// SolveModel submits a frozen model to the solver and classifies the
// outcome:
//
//   - OPTIMAL / FEASIBLE  → Solution with objective and selected arcs.
//   - INFEASIBLE / UNKNOWN → ErrNoSolution; the returned Solution still
//     carries the status so callers can tell a proven "no" from a
//     timeout. This is a legitimate negative result, not a fault.
//   - collaborator error   → ErrSolverUnavailable (wrapped), fatal to the
//     current request.
//
// The model is treated as read-only for the duration of the call.
func SolveModel(ctx context.Context, m *Model, slv Solver) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if slv == nil {
		return nil, ErrNilSolver
	}

	out, err := slv.Solve(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverUnavailable, err)
	}

	switch out.Status {
	case StatusOptimal, StatusFeasible:
		// fall through to extraction
	case StatusInfeasible, StatusUnknown:
		return &Solution{Status: out.Status}, ErrNoSolution
	default:
		return nil, fmt.Errorf("%w: unrecognized status %d", ErrSolverUnavailable, out.Status)
	}

	if len(out.Values) != m.NumVars() {
		return nil, fmt.Errorf("%w: assignment covers %d of %d variables",
			ErrSolverUnavailable, len(out.Values), m.NumVars())
	}

	sol := &Solution{
		Status:    out.Status,
		Objective: out.Objective,
		n:         m.N,
	}
	// Ascending id order is ascending (From, To) order by construction.
	for id, set := range out.Values {
		if set {
			sol.Arcs = append(sol.Arcs, m.Arc(id))
		}
	}

	return sol, nil
}

// Solve runs the whole formulation pipeline on raw coordinates and hands
// the model to the solver: distances → subsets → vehicle bounds → model →
// orchestrated solve. Validation failures surface before any solver
// work is attempted.
func Solve(ctx context.Context, nodes []Node, cfg Config, slv Solver) (*Solution, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := validateNodes(len(nodes)); err != nil {
		return nil, err
	}

	dist, err := NewDistanceMatrix(nodes)
	if err != nil {
		return nil, err
	}
	sets, err := EnumerateCustomerSets(len(nodes))
	if err != nil {
		return nil, err
	}
	m, err := BuildModel(dist, MinVehicles(sets, RoundedCapacityBound(cfg)), cfg)
	if err != nil {
		return nil, err
	}

	return SolveModel(ctx, m, slv)
}
