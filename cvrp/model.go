// Package cvrp - model builder: arc variables, constraint generation and
// the minimization objective.
//
// This is the algorithmic heart of the package. Everything the builder
// emits is solver-agnostic: boolean variables addressed by dense ids,
// cardinality constraints (sum of distinct variables {==, >=} bound) and
// an integer cost per variable. A Model is built, then frozen, then
// solved; it is never mutated while a solve is in flight.

package cvrp

import "sort"

// Sense is the comparison direction of a cardinality constraint.
type Sense uint8

const (
	// SenseEq forces the variable sum to equal the bound exactly.
	SenseEq Sense = iota

	// SenseAtLeast forces the variable sum to reach the bound or more.
	SenseAtLeast
)

// Constraint is a cardinality constraint over distinct arc-variable ids:
// Σ x[v] (v ∈ Vars) {==, >=} Bound. Every constraint the CVRP
// formulation needs — degree, depot flow, capacity cut — has this shape
// with unit coefficients.
type Constraint struct {
	Vars  []int
	Sense Sense
	Bound int
}

// Model is the frozen aggregate handed to a Solver: n² boolean arc
// variables (ids 0..n²−1, id = From·n + To, self-arcs included), the
// constraint set and the per-variable objective cost. The boolean domain
// of every variable is declared at creation; no separate integrality
// constraint exists or is needed.
type Model struct {
	// N is the node count; the depot is node 0.
	N int

	// Cost[id] is the objective coefficient of arc variable id — the
	// truncated Euclidean distance of the arc. Minimize Σ Cost[id]·x[id].
	Cost []int64

	// Constraints holds customer degree, depot flow and capacity cuts,
	// in that order, with cuts sorted by subset mask for determinism.
	Constraints []Constraint
}

// NumVars returns the number of arc variables (n²).
func (m *Model) NumVars() int {
	return m.N * m.N
}

// ArcID maps the ordered node pair (i, j) to its dense variable id.
func (m *Model) ArcID(i, j int) int {
	return i*m.N + j
}

// Arc recovers the ordered node pair of a variable id.
func (m *Model) Arc(id int) Arc {
	return Arc{From: id / m.N, To: id % m.N}
}

// Objective evaluates the cost of a full 0/1 assignment (one value per
// variable id). Used by the orchestrator to cross-check solver-reported
// objective values.
//
// Complexity: O(n²).
func (m *Model) Objective(values []bool) int64 {
	var sum int64
	for id, set := range values {
		if set {
			sum += m.Cost[id]
		}
	}

	return sum
}

// BuildModel assembles the complete integer program for an instance:
//
//  1. Customer in-degree:  ∀ j ∈ 1..n−1:  Σ_i x[i][j] == 1.
//  2. Customer out-degree: ∀ i ∈ 1..n−1:  Σ_j x[i][j] == 1.
//  3. Depot in-degree:     Σ_i x[i][0] == cfg.Vehicles.
//  4. Depot out-degree:    Σ_j x[0][j] == cfg.Vehicles.
//  5. Capacity / subtour elimination: for every customer subset S with
//     complement C (depot included): Σ_{i∈C, j∈S} x[i][j] >= minVehicles[S].
//     Any set of routes serving all of S must cross into S at least that
//     many times, which simultaneously forbids subtours confined to S and
//     enforces capacity feasibility.
//
// Degree sums run over ALL indices, self-arcs included: x[i][i] is
// created like any other variable and eliminated by the constraint
// structure, never excluded up front.
//
// Objective: minimize Σ x[i][j] · dist[i][j].
//
// Errors: ErrBadVehicleCount / ErrBadCapacity / ErrBadDemand on
// non-positive constants, ErrDimensionMismatch when dist disagrees with
// itself, ErrNoCustomers / ErrTooManyNodes on out-of-range instance
// sizes, ErrBadSubsets when minVehicles does not cover the instance.
// No I/O, no other failure modes.
//
// Complexity: O(n² · 2^n) — dominated by cut generation.
func BuildModel(dist DistanceMatrix, minVehicles map[CustomerSet]int, cfg Config) (*Model, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	n := dist.Dim()
	if err := validateNodes(n); err != nil {
		return nil, err
	}
	if err := validateMatrix(dist, n); err != nil {
		return nil, err
	}
	if err := validateSubsetCover(minVehicles, n); err != nil {
		return nil, err
	}

	m := &Model{
		N:           n,
		Cost:        make([]int64, n*n),
		Constraints: make([]Constraint, 0, 2*n+len(minVehicles)),
	}

	// Objective coefficients: one per ordered pair, diagonal included
	// (d[i][i] == 0, so self-arcs are free but never useful off-depot).
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.Cost[m.ArcID(i, j)] = dist[i][j]
		}
	}

	// 1. Customer in-degree: each customer is entered exactly once.
	for j = 1; j < n; j++ {
		m.Constraints = append(m.Constraints, Constraint{
			Vars:  m.column(j),
			Sense: SenseEq,
			Bound: 1,
		})
	}

	// 2. Customer out-degree: each customer is left exactly once.
	for i = 1; i < n; i++ {
		m.Constraints = append(m.Constraints, Constraint{
			Vars:  m.row(i),
			Sense: SenseEq,
			Bound: 1,
		})
	}

	// 3-4. Depot flow: exactly cfg.Vehicles arcs in and out of node 0.
	m.Constraints = append(m.Constraints,
		Constraint{Vars: m.column(0), Sense: SenseEq, Bound: cfg.Vehicles},
		Constraint{Vars: m.row(0), Sense: SenseEq, Bound: cfg.Vehicles},
	)

	// 5. Capacity cuts, in ascending mask order so the emitted model is
	// byte-for-byte reproducible across runs.
	subsets := make([]CustomerSet, 0, len(minVehicles))
	for s := range minVehicles {
		subsets = append(subsets, s)
	}
	sort.Slice(subsets, func(a, b int) bool { return subsets[a] < subsets[b] })

	for _, s := range subsets {
		inside := s.Members()
		outside := s.Complement(n).Members()
		boundary := make([]int, 0, len(inside)*len(outside))
		for _, from := range outside {
			for _, to := range inside {
				boundary = append(boundary, m.ArcID(from, to))
			}
		}
		m.Constraints = append(m.Constraints, Constraint{
			Vars:  boundary,
			Sense: SenseAtLeast,
			Bound: minVehicles[s],
		})
	}

	return m, nil
}

// column returns the variable ids of all arcs entering node j.
func (m *Model) column(j int) []int {
	ids := make([]int, m.N)
	for i := 0; i < m.N; i++ {
		ids[i] = m.ArcID(i, j)
	}

	return ids
}

// row returns the variable ids of all arcs leaving node i.
func (m *Model) row(i int) []int {
	ids := make([]int, m.N)
	for j := 0; j < m.N; j++ {
		ids[j] = m.ArcID(i, j)
	}

	return ids
}
