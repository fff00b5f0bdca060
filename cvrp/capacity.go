package cvrp

// VehicleBound computes a lower bound on the number of vehicles required
// to serve every node of a customer subset. It must return ≥ 1 for any
// non-empty subset.
//
// The bound is a substitution point on purpose: generalizing this system
// to per-node (non-uniform) demand means supplying a different
// VehicleBound — per-subset demand summation, or a bin-packing lower
// bound — NOT patching RoundedCapacityBound.
type VehicleBound func(CustomerSet) int

// RoundedCapacityBound returns the classical rounded capacity cut under
// the uniform-demand assumption:
//
//	minVehicles(S) = ceil(NodeDemand · |S| / VehicleCapacity)
//
// Documented limitation: valid only while every customer has the same
// demand. The bound depends on |S| alone, never on which customers are in
// the subset.
//
// cfg must have been validated (positive capacity and demand).
func RoundedCapacityBound(cfg Config) VehicleBound {
	return func(s CustomerSet) int {
		demand := cfg.NodeDemand * s.Size()

		return (demand + cfg.VehicleCapacity - 1) / cfg.VehicleCapacity
	}
}

// MinVehicles evaluates bound over every enumerated subset and returns
// the subset → minimum-vehicle mapping. Computed once after enumeration,
// read-only afterwards.
//
// Complexity: O(|sets|) bound evaluations.
func MinVehicles(sets []CustomerSet, bound VehicleBound) map[CustomerSet]int {
	out := make(map[CustomerSet]int, len(sets))
	for _, s := range sets {
		out[s] = bound(s)
	}

	return out
}
