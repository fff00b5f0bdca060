// Package cvrp formulates the Capacitated Vehicle Routing Problem as an
// exact 0/1 integer program and decodes solver assignments into routes.
//
// The pipeline, leaves first:
//
//   - NewDistanceMatrix — truncated Euclidean costs between all node pairs.
//   - EnumerateCustomerSets — every non-empty subset of customer indices.
//   - RoundedCapacityBound / MinVehicles — the minimum vehicle count needed
//     to serve each subset (the classical rounded capacity cut).
//   - BuildModel — n² boolean arc variables x[i][j], degree constraints,
//     depot-flow constraints, one boundary cut per customer subset, and a
//     total-distance minimization objective.
//   - Solve / SolveModel — submit the frozen model to a Solver collaborator
//     and classify the outcome (optimal, feasible, infeasible, unknown).
//   - Solution.Routes — stitch the selected arcs into per-vehicle tours.
//
// Complexity ceiling:
//
//	The cut family spans all 2^(n-1) − 1 customer subsets. This is not an
//	implementation artifact but the exact formulation itself: correctness
//	at small scale requires full enumeration. Instances are capped at
//	MaxExactNodes; anything larger needs lazy constraint generation
//	(cutting planes), which this package deliberately does not attempt.
//
// All formulation stages are pure, synchronous and deterministic: no
// logging, no panics on user input, only sentinel errors (see types.go).
// The only blocking operation is the Solver call, which honors its
// context.
package cvrp
