package cvrp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prlinger/vehicle-routing-problem/cvrp"
)

// fiveNodes is the reference instance used across the test files:
// depot at the origin, four customers spread over all quadrants.
func fiveNodes() []cvrp.Node {
	return []cvrp.Node{
		{X: 0, Y: 0},
		{X: -10, Y: 10},
		{X: 20, Y: 10},
		{X: 10, Y: -5},
		{X: -5, Y: -5},
	}
}

// fiveNodeConfig: four vehicles of capacity 40, unit demand 10 — every
// customer subset needs just one vehicle, so the capacity cuts
// degenerate to plain connectivity.
func fiveNodeConfig() cvrp.Config {
	return cvrp.DefaultConfig(
		cvrp.WithVehicles(4),
		cvrp.WithVehicleCapacity(40),
		cvrp.WithNodeDemand(10),
	)
}

// buildFiveNodeModel runs the formulation pipeline up to the model.
func buildFiveNodeModel(t *testing.T, cfg cvrp.Config) *cvrp.Model {
	t.Helper()

	nodes := fiveNodes()
	dist, err := cvrp.NewDistanceMatrix(nodes)
	require.NoError(t, err)
	sets, err := cvrp.EnumerateCustomerSets(len(nodes))
	require.NoError(t, err)
	m, err := cvrp.BuildModel(dist, cvrp.MinVehicles(sets, cvrp.RoundedCapacityBound(cfg)), cfg)
	require.NoError(t, err)

	return m
}

// requireRoutingInvariants asserts the solved-model properties on a
// solution's arc set: customer in/out-degree exactly 1, depot degree
// exactly the fleet size, and at least minVehicles(S) boundary
// crossings into every customer subset.
func requireRoutingInvariants(t *testing.T, sol *cvrp.Solution, n, vehicles int, cfg cvrp.Config) {
	t.Helper()

	inDeg := make([]int, n)
	outDeg := make([]int, n)
	for _, a := range sol.Arcs {
		require.GreaterOrEqual(t, a.From, 0)
		require.Less(t, a.From, n)
		require.GreaterOrEqual(t, a.To, 0)
		require.Less(t, a.To, n)
		outDeg[a.From]++
		inDeg[a.To]++
	}

	for j := 1; j < n; j++ {
		require.Equalf(t, 1, inDeg[j], "customer %d in-degree", j)
		require.Equalf(t, 1, outDeg[j], "customer %d out-degree", j)
	}
	require.Equal(t, vehicles, inDeg[0], "depot in-degree")
	require.Equal(t, vehicles, outDeg[0], "depot out-degree")

	sets, err := cvrp.EnumerateCustomerSets(n)
	require.NoError(t, err)
	bound := cvrp.RoundedCapacityBound(cfg)
	for _, s := range sets {
		crossings := 0
		for _, a := range sol.Arcs {
			if !s.Contains(a.From) && s.Contains(a.To) {
				crossings++
			}
		}
		require.GreaterOrEqualf(t, crossings, bound(s),
			"boundary crossings into subset %b", uint64(s))
	}
}
