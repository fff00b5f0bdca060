// SPDX-License-Identifier: MIT
// Package cvrp: core types, configuration and the sentinel error set.
// All algorithms in this package MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user input.

package cvrp

import "errors"

// Sentinel errors returned by the formulation and solve stages.
// Messages are prefixed "cvrp: ..." for consistent grepping.
var (
	// ErrNoNodes is returned when the node list is empty (not even a depot).
	ErrNoNodes = errors.New("cvrp: empty node list")

	// ErrNoCustomers is returned when the node list contains only the
	// depot: there is nothing to route.
	ErrNoCustomers = errors.New("cvrp: node list needs at least one customer")

	// ErrTooManyNodes is returned when the instance exceeds MaxExactNodes.
	// The exact formulation pre-enumerates every customer subset; beyond
	// this bound a lazy cutting-plane strategy is required instead.
	ErrTooManyNodes = errors.New("cvrp: instance too large for exact subset enumeration")

	// ErrBadVehicleCount is returned when the configured vehicle count is
	// zero or negative.
	ErrBadVehicleCount = errors.New("cvrp: vehicle count must be positive")

	// ErrBadCapacity is returned when the configured vehicle capacity is
	// zero or negative.
	ErrBadCapacity = errors.New("cvrp: vehicle capacity must be positive")

	// ErrBadDemand is returned when the configured per-node demand is zero
	// or negative.
	ErrBadDemand = errors.New("cvrp: node demand must be positive")

	// ErrDimensionMismatch is returned when a distance matrix is not
	// square or disagrees with the node count.
	ErrDimensionMismatch = errors.New("cvrp: distance matrix dimension mismatch")

	// ErrBadSubsets is returned by BuildModel when the min-vehicle mapping
	// does not cover exactly the non-empty customer subsets of the
	// instance, or carries a non-positive bound.
	ErrBadSubsets = errors.New("cvrp: min-vehicle mapping must cover every non-empty customer subset")

	// ErrNilSolver is returned when a nil Solver collaborator is supplied.
	ErrNilSolver = errors.New("cvrp: nil solver")

	// ErrNilModel is returned when a nil Model is submitted for solving.
	ErrNilModel = errors.New("cvrp: nil model")

	// ErrNoSolution is returned when the solver terminates without a usable
	// assignment (infeasible or unknown). This is a legitimate negative
	// outcome, not a system fault; the returned Solution carries the
	// precise status.
	ErrNoSolution = errors.New("cvrp: no feasible solution")

	// ErrSolverUnavailable is returned when the solver collaborator could
	// not be reached or failed internally. Unlike ErrNoSolution it is a
	// fault of the current request, never a statement about the instance.
	ErrSolverUnavailable = errors.New("cvrp: solver unavailable")

	// ErrMalformedSolution is returned by route decoding when the selected
	// arc set violates the degree structure a solved model guarantees.
	ErrMalformedSolution = errors.New("cvrp: solution violates route structure")
)

// MaxExactNodes caps the total node count (depot included) accepted by the
// exact formulation. At n nodes the model carries 2^(n-1) − 1 capacity
// cuts; 20 nodes is already half a million constraints.
const MaxExactNodes = 20

// Node is an immutable 2-D coordinate. Node identity throughout the
// package is the index in the input slice, never the coordinate value;
// index 0 is the depot, every other index is a customer.
type Node struct {
	X float64
	Y float64
}

// Config carries the scalar instance constants. It is passed explicitly
// into the formulation — there is no ambient process-wide state — so the
// model stays pure and independently testable.
//
// Vehicles        – fleet size; the depot emits and absorbs exactly this
//                   many route arcs.
// VehicleCapacity – uniform capacity of every vehicle.
// NodeDemand      – uniform demand of every customer node.
type Config struct {
	Vehicles        int
	VehicleCapacity int
	NodeDemand      int
}

// Option is a functional option for building a Config.
type Option func(*Config)

// WithVehicles sets the fleet size.
func WithVehicles(k int) Option {
	return func(c *Config) {
		c.Vehicles = k
	}
}

// WithVehicleCapacity sets the uniform per-vehicle capacity.
func WithVehicleCapacity(capacity int) Option {
	return func(c *Config) {
		c.VehicleCapacity = capacity
	}
}

// WithNodeDemand sets the uniform per-customer demand.
func WithNodeDemand(d int) Option {
	return func(c *Config) {
		c.NodeDemand = d
	}
}

// DefaultConfig returns the minimal valid configuration: a single vehicle
// of capacity 1 serving unit demands. Use functional options to override.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Vehicles:        1,
		VehicleCapacity: 1,
		NodeDemand:      1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Status classifies a solver outcome.
type Status uint8

const (
	// StatusUnknown means the solver terminated without proving anything
	// (e.g. a time limit or cancellation before any model was found).
	StatusUnknown Status = iota

	// StatusOptimal means the assignment is proven cost-minimal.
	StatusOptimal

	// StatusFeasible means the solver found an assignment but did not
	// prove optimality (stopped early).
	StatusFeasible

	// StatusInfeasible means the constraint set admits no assignment.
	StatusInfeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// Arc is a directed pair of node indices: a vehicle travels straight from
// From to To.
type Arc struct {
	From int
	To   int
}
