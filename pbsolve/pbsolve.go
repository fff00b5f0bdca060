package pbsolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/prlinger/vehicle-routing-problem/cvrp"
)

// Sentinel errors for the adapter boundary.
var (
	// ErrNilModel is returned when a nil model is submitted.
	ErrNilModel = errors.New("pbsolve: nil model")

	// ErrInternal is returned when the underlying solver fails in an
	// unexpected way (e.g. panics on a malformed problem).
	ErrInternal = errors.New("pbsolve: internal solver failure")
)

// Solver is a cvrp.Solver backed by gophersat. The zero value is not
// usable; construct with New.
type Solver struct {
	verbose bool
}

// Option configures the adapter.
type Option func(*Solver)

// WithVerbose makes the underlying engine print search progress to
// stdout. Intended for debugging hard instances, off by default.
func WithVerbose() Option {
	return func(s *Solver) {
		s.verbose = true
	}
}

// New returns a ready-to-use gophersat-backed solver.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve translates the model into pseudo-boolean constraints, runs the
// engine to optimality and reports the outcome. Implements cvrp.Solver.
//
// The engine runs on a worker goroutine; if ctx expires first the reply
// is discarded and StatusUnknown is returned (see package doc).
func (s *Solver) Solve(ctx context.Context, m *cvrp.Model) (cvrp.Outcome, error) {
	if m == nil {
		return cvrp.Outcome{}, ErrNilModel
	}
	// A context that is already dead means no search was requested.
	if ctx.Err() != nil {
		return cvrp.Outcome{Status: cvrp.StatusUnknown}, nil
	}

	type reply struct {
		out cvrp.Outcome
		err error
	}
	ch := make(chan reply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- reply{err: fmt.Errorf("%w: %v", ErrInternal, r)}
			}
		}()
		out, err := s.run(m)
		ch <- reply{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return cvrp.Outcome{Status: cvrp.StatusUnknown}, nil
	case r := <-ch:
		return r.out, r.err
	}
}

// run performs the blocking translate-solve-minimize sequence.
func (s *Solver) run(m *cvrp.Model) (cvrp.Outcome, error) {
	pb := solver.ParsePBConstrs(translate(m))

	costLits, costWeights := costFunc(m)
	if len(costLits) > 0 {
		pb.SetCostFunc(costLits, costWeights)
	}

	eng := solver.New(pb)
	eng.Verbose = s.verbose

	switch eng.Solve() {
	case solver.Unsat:
		return cvrp.Outcome{Status: cvrp.StatusInfeasible}, nil
	case solver.Indet:
		return cvrp.Outcome{Status: cvrp.StatusUnknown}, nil
	case solver.Sat:
		// fall through to optimization
	}

	if len(costLits) > 0 {
		// Descending-cost search; after it returns, Model holds the
		// cheapest assignment found.
		if cost := eng.Minimize(); cost < 0 {
			// Satisfiable a moment ago, unsatisfiable now: not a
			// statement about the instance but about the engine.
			return cvrp.Outcome{}, fmt.Errorf("%w: minimization lost the model", ErrInternal)
		}
	}

	binding := eng.Model()
	if len(binding) < m.NumVars() {
		return cvrp.Outcome{}, fmt.Errorf("%w: model covers %d of %d variables",
			ErrInternal, len(binding), m.NumVars())
	}

	values := make([]bool, m.NumVars())
	copy(values, binding[:m.NumVars()])

	return cvrp.Outcome{
		Status:    cvrp.StatusOptimal,
		Objective: m.Objective(values),
		Values:    values,
	}, nil
}

// translate rewrites every cardinality constraint of the model as a
// pseudo-boolean constraint over 1-based positive literals.
func translate(m *cvrp.Model) []solver.PBConstr {
	constrs := make([]solver.PBConstr, 0, 2*len(m.Constraints))
	for _, c := range m.Constraints {
		lits := make([]int, len(c.Vars))
		weights := make([]int, len(c.Vars))
		for k, v := range c.Vars {
			lits[k] = v + 1
			weights[k] = 1
		}
		switch c.Sense {
		case cvrp.SenseEq:
			constrs = append(constrs, solver.Eq(lits, weights, c.Bound)...)
		case cvrp.SenseAtLeast:
			constrs = append(constrs, solver.GtEq(lits, weights, c.Bound))
		}
	}

	return constrs
}

// costFunc builds the minimization target from the model's objective,
// skipping zero-cost arcs (they cannot change the optimum).
func costFunc(m *cvrp.Model) ([]solver.Lit, []int) {
	var (
		lits    []solver.Lit
		weights []int
	)
	for id, w := range m.Cost {
		if w > 0 {
			lits = append(lits, solver.IntToLit(int32(id+1)))
			weights = append(weights, int(w))
		}
	}

	return lits, weights
}
