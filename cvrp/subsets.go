package cvrp

import "math/bits"

// CustomerSet is an immutable, unordered set of customer node indices,
// represented as a bitmask: bit k set means node k belongs to the set.
// Bit 0 (the depot) is never set. The representation is value-comparable
// and hashable, so a CustomerSet keys the min-vehicle mapping directly.
type CustomerSet uint64

// EnumerateCustomerSets generates every non-empty subset of the customer
// index range 1..n-1, where n is the total node count (depot included).
//
// The result contains exactly 2^(n-1) − 1 distinct sets: never the empty
// set, never a set containing the depot index. Enumeration order is
// ascending by mask value — irrelevant to correctness, but deterministic.
//
// This is inherently exponential; it is the exact formulation's
// deliberate scalability ceiling, guarded by MaxExactNodes.
//
// Complexity: O(2^n) time and space.
func EnumerateCustomerSets(n int) ([]CustomerSet, error) {
	if n <= 0 {
		return nil, ErrNoNodes
	}
	if n == 1 {
		return nil, ErrNoCustomers
	}
	if n > MaxExactNodes {
		return nil, ErrTooManyNodes
	}

	total := (1 << (n - 1)) - 1
	sets := make([]CustomerSet, 0, total)
	for mask := 1; mask <= total; mask++ {
		// Shift customer bits up by one so bit k addresses node k;
		// bit 0 (depot) stays clear by construction.
		sets = append(sets, CustomerSet(mask)<<1)
	}

	return sets, nil
}

// Size returns the number of customers in the set.
func (s CustomerSet) Size() int {
	return bits.OnesCount64(uint64(s))
}

// Contains reports whether node index i belongs to the set.
func (s CustomerSet) Contains(i int) bool {
	if i < 0 || i > 63 {
		return false
	}

	return s&(1<<uint(i)) != 0
}

// Complement returns every node index in 0..n-1 not in s — including the
// depot. This is the "outside" side of a boundary cut.
func (s CustomerSet) Complement(n int) CustomerSet {
	full := CustomerSet(1)<<uint(n) - 1

	return full &^ s
}

// Members returns the node indices of the set in ascending order.
func (s CustomerSet) Members() []int {
	out := make([]int, 0, s.Size())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}
