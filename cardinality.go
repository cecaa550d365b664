package prrp

import (
	"fmt"

	"github.com/katalvlaran/prrp/region"
)

// validateCardinalities checks the spatial driver's entry contract: len(c)
// must equal p, every entry must be at least 1, and the entries must sum to
// exactly n (the last region is whatever remains, so an inexact sum is a
// caller error, not a runtime one).
func validateCardinalities(c []int, p, n int) error {
	if len(c) != p {
		return fmt.Errorf("prrp: cardinality: len(c)=%d != p=%d: %w", len(c), p, region.ErrBadCardinality)
	}

	sum := 0
	for i, ci := range c {
		if ci < 1 {
			return fmt.Errorf("prrp: cardinality: c[%d]=%d < 1: %w", i, ci, region.ErrBadCardinality)
		}
		if ci > n {
			return fmt.Errorf("prrp: cardinality: c[%d]=%d > |V|=%d: %w", i, ci, n, region.ErrBadCardinality)
		}
		sum += ci
	}
	if sum != n {
		return fmt.Errorf("prrp: cardinality: sum(c)=%d != |V|=%d: %w", sum, n, region.ErrBadCardinality)
	}
	if n < p {
		return fmt.Errorf("prrp: cardinality: |V|=%d < p=%d: %w", n, p, region.ErrBadCardinality)
	}

	return nil
}
