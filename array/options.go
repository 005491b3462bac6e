package array

import (
	"errors"
	"fmt"
	"strings"
)

// GrowthPolicy decides the new capacity when an append-like operation finds
// the array full. It never changes contents or order, only how often the
// buffer is reallocated.
type GrowthPolicy int

const (
	// GrowDouble at least doubles the capacity. Pushes are amortized O(1).
	GrowDouble GrowthPolicy = iota

	// GrowByOne grows by exactly the number of missing slots. Every push on
	// a full array reallocates, so n pushes cost O(n^2) copies.
	GrowByOne
)

var ErrUnknownGrowthPolicy = errors.New("unknown growth policy")

func (g GrowthPolicy) String() string {
	switch g {
	case GrowDouble:
		return "double"
	case GrowByOne:
		return "one"
	default:
		return fmt.Sprintf("GrowthPolicy(%d)", int(g))
	}
}

// ParseGrowthPolicy accepts "double" or "one" (case-insensitive).
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double":
		return GrowDouble, nil
	case "one":
		return GrowByOne, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGrowthPolicy, s)
	}
}

// next returns the capacity to grow to so that at least required slots fit.
func (g GrowthPolicy) next(capacity, required int) int {
	if g == GrowByOne {
		return required
	}

	return max(required, capacity*2) //nolint:mnd
}

// config is independent of the element type, so arrays derived with Map
// keep the settings of their source.
type config struct {
	growth      GrowthPolicy
	maxCapacity int
}

// Option configures an Array at creation.
type Option func(*config)

// WithGrowthPolicy sets how the array grows when full.
func WithGrowthPolicy(policy GrowthPolicy) Option {
	return func(c *config) {
		c.growth = policy
	}
}

// WithMaxCapacity caps the number of slots the array may allocate. Creating
// a larger array fails with ErrAllocationFailure, growing past it with
// ErrReallocationFailure. Zero means no limit.
func WithMaxCapacity(limit int) Option {
	return func(c *config) {
		c.maxCapacity = max(limit, 0)
	}
}

func newConfig(opts []Option) config {
	cfg := config{growth: GrowDouble}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
