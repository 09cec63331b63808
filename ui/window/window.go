// Package window computes which slice of a large, uniformly sized list has
// to be materialized for a given scroll position.
//
// Key properties:
//   - Compute is a pure function of (itemCount, Config, scrollOffset).
//   - The returned Range always satisfies 0 <= Start <= End <= itemCount and
//     OffsetY == Start*ItemSize.
//   - Overscan pads the range on both edges so fast scrolling does not show
//     unrendered rows.
//   - Invalid layout parameters are rejected with ErrInvalidConfig instead of
//     producing an empty or unbounded range.
package window

import (
	"errors"
	"fmt"
	"math"
)

// DefaultOverscan is the number of extra items rendered past each edge of the
// viewport when the caller does not choose one.
const DefaultOverscan = 3

// ErrInvalidConfig is wrapped by every layout validation failure.
var ErrInvalidConfig = errors.New("window: invalid configuration")

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

// Config holds the layout parameters of a virtualized list. Sizes share one
// unit (terminal lines in this repository, pixels elsewhere).
type Config struct {
	// ItemSize is the fixed extent of every item. Must be > 0.
	ItemSize float64
	// ContainerSize is the extent of the visible viewport. Must be > 0.
	ContainerSize float64
	// Overscan is the number of items rendered beyond each visible edge.
	Overscan int
}

// NewConfig returns a Config using DefaultOverscan.
func NewConfig(itemSize, containerSize float64) Config {
	return Config{
		ItemSize:      itemSize,
		ContainerSize: containerSize,
		Overscan:      DefaultOverscan,
	}
}

// Validate reports whether c can drive Compute.
func (c Config) Validate() error {
	switch {
	case !finite(c.ItemSize) || c.ItemSize <= 0:
		return fmt.Errorf("%w: item size must be > 0, got %v", ErrInvalidConfig, c.ItemSize)
	case !finite(c.ContainerSize) || c.ContainerSize <= 0:
		return fmt.Errorf("%w: container size must be > 0, got %v", ErrInvalidConfig, c.ContainerSize)
	case c.Overscan < 0:
		return fmt.Errorf("%w: overscan must be >= 0, got %d", ErrInvalidConfig, c.Overscan)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ---------------------------------------------------------------------------
// Range
// ---------------------------------------------------------------------------

// Range is the half-open index interval [Start, End) that must be rendered,
// together with the offset at which item Start is positioned.
type Range struct {
	Start   int
	End     int
	OffsetY float64
}

// Len returns the number of items in the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no items.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether index i falls inside [Start, End).
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)@%g", r.Start, r.End, r.OffsetY)
}

// ---------------------------------------------------------------------------
// Compute
// ---------------------------------------------------------------------------

// Compute returns the range of items that intersect
// [scrollOffset, scrollOffset+ContainerSize], padded by Overscan on each
// side and clipped to [0, itemCount].
//
// scrollOffset is trusted as reported by the scroll surface. If it is stale
// (the list shrank since it was reported) Start is pulled back to End so no
// index past itemCount is ever produced.
func Compute(itemCount int, cfg Config, scrollOffset float64) (Range, error) {
	if err := cfg.Validate(); err != nil {
		return Range{}, err
	}
	if itemCount < 0 {
		return Range{}, fmt.Errorf("%w: item count must be >= 0, got %d", ErrInvalidConfig, itemCount)
	}
	if math.IsNaN(scrollOffset) {
		return Range{}, fmt.Errorf("%w: scroll offset is NaN", ErrInvalidConfig)
	}
	if itemCount == 0 {
		return Range{}, nil
	}

	first := math.Floor(scrollOffset / cfg.ItemSize)
	last := math.Ceil((scrollOffset + cfg.ContainerSize) / cfg.ItemSize)

	start := clampIndex(first-float64(cfg.Overscan), itemCount)
	end := clampIndex(last+float64(cfg.Overscan), itemCount)
	if start > end {
		start = end
	}

	return Range{
		Start:   start,
		End:     end,
		OffsetY: float64(start) * cfg.ItemSize,
	}, nil
}

// clampIndex converts f to an int bounded by [0, n]. Working in float64
// until here keeps huge offsets from overflowing.
func clampIndex(f float64, n int) int {
	if f <= 0 {
		return 0
	}
	if f >= float64(n) {
		return n
	}
	return int(f)
}

// TotalSize returns the extent of the full list, i.e. the size of the spacer
// that makes a host scrollbar reflect every item.
func TotalSize(itemCount int, cfg Config) float64 {
	if itemCount <= 0 {
		return 0
	}
	return float64(itemCount) * cfg.ItemSize
}

// MaxOffset returns the largest meaningful scroll offset for itemCount items.
func MaxOffset(itemCount int, cfg Config) float64 {
	return math.Max(0, TotalSize(itemCount, cfg)-cfg.ContainerSize)
}

// Slice returns items[r.Start:r.End], clipped to len(items).
func Slice[T any](items []T, r Range) []T {
	start, end := r.Start, r.End
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	if start < 0 {
		start = 0
	}
	return items[start:end]
}
