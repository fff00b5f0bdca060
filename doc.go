// Package vrp is an exact integer-programming formulation of the
// Capacitated Vehicle Routing Problem (CVRP), plus a pluggable solver
// backend.
//
// What lives here:
//
//	cvrp/    — the formulation core: truncated Euclidean distance model,
//	           exhaustive customer-subset enumeration, rounded-capacity
//	           vehicle bounds, arc-variable model building (degree, depot
//	           and capacity/subtour-elimination constraints, minimization
//	           objective) and a solve orchestrator behind a narrow
//	           Solver interface.
//	pbsolve/ — a concrete Solver backed by gophersat's pseudo-boolean
//	           layer; translates the model 1:1 into cardinality
//	           constraints and a linear cost function.
//
// Why this shape?
//
//   - The formulation is pure and deterministic — every stage is a
//     value-in/value-out transformation with sentinel-error validation,
//     independently testable without any solver attached.
//   - The solver is a collaborator, not a dependency of the math: swap
//     pbsolve for any engine that can answer a 0/1 linear program.
//   - Exactness is the point and the ceiling: the capacity cuts span
//     every non-empty customer subset, so the model is exponential by
//     construction. Intended for small instances; see cvrp's package
//     documentation for the hard node limit and the lazy-cut road not
//     taken.
//
//	go get github.com/prlinger/vehicle-routing-problem/cvrp
package vrp
