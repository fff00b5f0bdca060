package cvrp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prlinger/vehicle-routing-problem/cvrp"
)

// TestEnumerateCustomerSets_Count verifies the exhaustive-enumeration
// invariant: exactly 2^(n-1) − 1 distinct sets, none empty, none holding
// the depot.
func TestEnumerateCustomerSets_Count(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10} {
		sets, err := cvrp.EnumerateCustomerSets(n)
		require.NoError(t, err)
		require.Len(t, sets, (1<<(n-1))-1)

		seen := make(map[cvrp.CustomerSet]struct{}, len(sets))
		for _, s := range sets {
			require.Positive(t, s.Size(), "empty subset enumerated")
			require.False(t, s.Contains(0), "subset contains the depot")
			_, dup := seen[s]
			require.False(t, dup, "duplicate subset %b", uint64(s))
			seen[s] = struct{}{}

			for _, m := range s.Members() {
				require.GreaterOrEqual(t, m, 1)
				require.Less(t, m, n)
			}
		}
	}
}

func TestCustomerSet_Ops(t *testing.T) {
	// {1, 3} within a 5-node instance.
	s := cvrp.CustomerSet(1<<1 | 1<<3)
	require.Equal(t, 2, s.Size())
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(2))
	require.False(t, s.Contains(64))
	require.Equal(t, []int{1, 3}, s.Members())

	// Complement within 0..4 holds the depot and the other customers.
	c := s.Complement(5)
	require.Equal(t, []int{0, 2, 4}, c.Members())
	require.True(t, c.Contains(0))

	// Set and complement partition the full range.
	require.Equal(t, 5, s.Size()+c.Size())
	require.Zero(t, s&c)
}

func TestEnumerateCustomerSets_Rejections(t *testing.T) {
	t.Run("n=0 → ErrNoNodes", func(t *testing.T) {
		_, err := cvrp.EnumerateCustomerSets(0)
		if !errors.Is(err, cvrp.ErrNoNodes) {
			t.Fatalf("want ErrNoNodes, got %v", err)
		}
	})

	t.Run("n=1 → ErrNoCustomers", func(t *testing.T) {
		_, err := cvrp.EnumerateCustomerSets(1)
		if !errors.Is(err, cvrp.ErrNoCustomers) {
			t.Fatalf("want ErrNoCustomers, got %v", err)
		}
	})

	t.Run("beyond MaxExactNodes → ErrTooManyNodes", func(t *testing.T) {
		_, err := cvrp.EnumerateCustomerSets(cvrp.MaxExactNodes + 1)
		if !errors.Is(err, cvrp.ErrTooManyNodes) {
			t.Fatalf("want ErrTooManyNodes, got %v", err)
		}
	})

	t.Run("single customer → exactly {1}", func(t *testing.T) {
		sets, err := cvrp.EnumerateCustomerSets(2)
		if err != nil {
			t.Fatal(err)
		}
		if len(sets) != 1 || !sets[0].Contains(1) || sets[0].Size() != 1 {
			t.Fatalf("want [{1}], got %v", sets)
		}
	})
}
