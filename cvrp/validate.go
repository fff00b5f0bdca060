// Package cvrp - validation stage shared by the model builder and the
// solve pipeline.
//
// Every check here runs before any model construction or solver call, so
// malformed input is rejected without wasted work. Deterministic,
// side-effect free, sentinel errors only.

package cvrp

// validateConfig rejects non-positive instance constants.
//
// Complexity: O(1).
func validateConfig(cfg Config) error {
	if cfg.Vehicles <= 0 {
		return ErrBadVehicleCount
	}
	if cfg.VehicleCapacity <= 0 {
		return ErrBadCapacity
	}
	if cfg.NodeDemand <= 0 {
		return ErrBadDemand
	}

	return nil
}

// validateNodes rejects instances with no depot or no customers, and
// instances beyond the exact-enumeration ceiling.
//
// Complexity: O(1).
func validateNodes(n int) error {
	if n == 0 {
		return ErrNoNodes
	}
	if n == 1 {
		return ErrNoCustomers
	}
	if n > MaxExactNodes {
		return ErrTooManyNodes
	}

	return nil
}

// validateMatrix checks that dist is square of order n.
//
// Complexity: O(n).
func validateMatrix(dist DistanceMatrix, n int) error {
	if dist.Dim() != n {
		return ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateSubsetCover checks that minVehicles covers exactly the
// non-empty customer subsets of an n-node instance with positive bounds.
// A missing subset would silently weaken the cut family, so this is a
// hard error, not a best-effort warning.
//
// Complexity: O(2^n).
func validateSubsetCover(minVehicles map[CustomerSet]int, n int) error {
	if len(minVehicles) != (1<<(n-1))-1 {
		return ErrBadSubsets
	}

	full := CustomerSet(1)<<uint(n) - 1
	for s, k := range minVehicles {
		if s == 0 || s.Contains(0) || s&^full != 0 {
			return ErrBadSubsets
		}
		if k <= 0 {
			return ErrBadSubsets
		}
	}

	return nil
}
