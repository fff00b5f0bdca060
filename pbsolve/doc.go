// Package pbsolve adapts gophersat's pseudo-boolean solver to the
// cvrp.Solver interface.
//
// The mapping is direct, with no modeling tricks:
//
//   - arc variable id v        → PB variable v+1 (gophersat is 1-based)
//   - SenseEq constraint       → PB equality (Σ lits == bound)
//   - SenseAtLeast constraint  → PB at-least (Σ lits ≥ bound)
//   - objective                → cost function over positive-cost arcs,
//     minimized via the solver's descending-cost search
//
// Outcome classification: a completed minimization proves optimality
// (StatusOptimal); UNSAT is StatusInfeasible; an undetermined answer or
// a context expiry is StatusUnknown. This backend never reports
// StatusFeasible — it runs to optimality or not at all. Errors are
// reserved for internal solver failures, which the orchestrator
// surfaces as ErrSolverUnavailable.
//
// The solve is one synchronous request. Cancellation abandons the
// search: gophersat has no preemption hook, so the worker goroutine is
// left to finish and its reply is discarded.
package pbsolve
