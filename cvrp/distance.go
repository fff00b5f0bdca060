package cvrp

import "math"

// DistanceMatrix is a square, symmetric matrix of non-negative integer
// travel costs with a zero diagonal. Entries are the Euclidean distance
// truncated toward zero — truncation (not rounding) is intentional and
// load-bearing: the objective and the solver operate on exactly these
// integral values. Built once, read-only afterwards.
type DistanceMatrix [][]int64

// NewDistanceMatrix computes pairwise truncated Euclidean costs for the
// given nodes (depot at index 0).
//
// Contract:
//   - len(nodes) ≥ 2: a depot alone is not a routable instance
//     (ErrNoCustomers); an empty list is rejected with ErrNoNodes.
//   - d[i][i] = 0 is set directly, without a distance computation.
//   - Each unordered pair {i, j} is evaluated once and stored
//     symmetrically.
//
// Pure function of nodes; no side effects.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(nodes []Node) (DistanceMatrix, error) {
	n := len(nodes)
	if n == 0 {
		return nil, ErrNoNodes
	}
	if n == 1 {
		return nil, ErrNoCustomers
	}

	d := make(DistanceMatrix, n)
	for i := 0; i < n; i++ {
		d[i] = make([]int64, n)
	}

	var (
		i, j   int
		dx, dy float64
		w      int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = nodes[i].X - nodes[j].X
			dy = nodes[i].Y - nodes[j].Y
			// int64 conversion truncates toward zero; the operand is
			// non-negative, so this is the required floor.
			w = int64(math.Sqrt(dx*dx + dy*dy))
			d[i][j] = w
			d[j][i] = w
		}
	}

	return d, nil
}

// Dim returns the matrix order (total node count, depot included).
func (d DistanceMatrix) Dim() int {
	return len(d)
}
