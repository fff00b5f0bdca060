// Package cvrp - route decoding: selected arcs → ordered vehicle tours.

package cvrp

import "sort"

// Routes stitches the solution's arcs into per-vehicle routes. Every
// route starts and ends at the depot (index 0); a selected depot
// self-arc decodes as the degenerate round trip [0, 0] of an idle
// vehicle. Routes are ordered by their first customer index.
//
// The arc set of a correctly solved model satisfies the degree
// structure by construction (each customer one in, one out; depot
// degree = fleet size). Routes re-verifies that structure while
// walking and returns ErrMalformedSolution on any violation, so a
// buggy or foreign solver cannot produce a silently nonsensical
// decoding.
//
// Complexity: O(n + |arcs|).
func (s *Solution) Routes() ([][]int, error) {
	if s == nil || s.n < 2 {
		return nil, ErrMalformedSolution
	}

	var (
		next  = make([]int, s.n) // successor per customer, -1 = unset
		heads []int              // customers entered straight from the depot
		idle  bool               // depot self-arc selected
	)
	for i := range next {
		next[i] = -1
	}

	for _, a := range s.Arcs {
		switch {
		case a.From == 0 && a.To == 0:
			idle = true
		case a.From == 0:
			heads = append(heads, a.To)
		default:
			if next[a.From] != -1 { // two departures from one customer
				return nil, ErrMalformedSolution
			}
			next[a.From] = a.To
		}
	}
	sort.Ints(heads)

	var (
		routes  [][]int
		visited = make([]bool, s.n)
	)
	for _, h := range heads {
		route := []int{0}
		for at := h; at != 0; at = next[at] {
			if at < 0 || at >= s.n || visited[at] {
				return nil, ErrMalformedSolution
			}
			visited[at] = true
			route = append(route, at)
			if next[at] == -1 {
				return nil, ErrMalformedSolution
			}
		}
		route = append(route, 0)
		routes = append(routes, route)
	}

	// Every customer must have been consumed by exactly one walk.
	for i := 1; i < s.n; i++ {
		if !visited[i] {
			return nil, ErrMalformedSolution
		}
	}

	if idle {
		routes = append(routes, []int{0, 0})
	}

	return routes, nil
}
