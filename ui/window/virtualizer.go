package window

import "slices"

// Surface is the host scroll surface a Virtualizer listens to.
type Surface interface {
	// Offset returns the current scroll offset.
	Offset() float64
	// Subscribe registers fn for offset changes. The returned cancel
	// function detaches it.
	Subscribe(fn func(offset float64)) (cancel func())
}

type subscriber struct {
	id int
	fn func(Range)
}

// Stats counts recomputations and change notifications since construction.
type Stats struct {
	Recomputes int
	Notifies   int
}

// Virtualizer keeps the visible Range of an item list in sync with a scroll
// surface and tells its subscribers when that range changes.
//
// It is not safe for concurrent use; all calls and scroll notifications are
// expected on the goroutine that owns the UI.
type Virtualizer[T any] struct {
	items  []T
	cfg    Config
	offset float64
	rng    Range

	surface Surface
	detach  func()
	// mountGen increases on every Mount/Unmount. Listener closures carry the
	// generation they were created for and go inert once it moves on.
	mountGen uint64

	subs   []subscriber
	nextID int

	stats Stats
}

// New returns a Virtualizer over items. cfg is validated immediately.
func New[T any](cfg Config, items []T) (*Virtualizer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &Virtualizer[T]{
		items: items,
		cfg:   cfg,
	}
	v.rng, _ = Compute(len(items), cfg, 0)
	return v, nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Mount attaches one listener to s and recomputes from its current offset.
// Mounting the surface that is already mounted is a no-op; mounting a
// different one detaches the previous listener first.
func (v *Virtualizer[T]) Mount(s Surface) {
	if s == nil {
		v.Unmount()
		return
	}
	if v.surface == s && v.detach != nil {
		return
	}
	v.Unmount()

	gen := v.mountGen
	v.surface = s
	v.detach = s.Subscribe(func(offset float64) {
		if v.mountGen != gen {
			return
		}
		v.offset = offset
		v.recompute()
	})
	v.offset = s.Offset()
	v.recompute()
}

// Unmount detaches the scroll listener. Notifications that still arrive
// afterwards are ignored.
func (v *Virtualizer[T]) Unmount() {
	v.mountGen++
	if v.detach != nil {
		v.detach()
	}
	v.detach = nil
	v.surface = nil
}

// Mounted reports whether a scroll surface is attached.
func (v *Virtualizer[T]) Mounted() bool { return v.detach != nil }

// OnChange registers fn to be called whenever the visible range changes.
func (v *Virtualizer[T]) OnChange(fn func(Range)) (cancel func()) {
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				// Copy so a dispatch in progress keeps its snapshot intact.
				v.subs = slices.Delete(slices.Clone(v.subs), i, i+1)
				return
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetItems replaces the item list and recomputes immediately, so a shrunken
// list never hands stale indices to a renderer.
func (v *Virtualizer[T]) SetItems(items []T) {
	v.items = items
	v.recompute()
}

// SetConfig swaps the layout parameters. An invalid cfg is rejected and the
// previous one stays in effect.
func (v *Virtualizer[T]) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	v.cfg = cfg
	v.recompute()
	return nil
}

// Refresh re-reads the mounted surface's offset and recomputes.
func (v *Virtualizer[T]) Refresh() {
	if v.surface != nil {
		v.offset = v.surface.Offset()
	}
	v.recompute()
}

func (v *Virtualizer[T]) recompute() {
	v.stats.Recomputes++
	r, err := Compute(len(v.items), v.cfg, v.offset)
	if err != nil {
		// cfg is validated on every entry point; only a NaN offset gets here.
		r = Range{}
	}
	if r == v.rng {
		return
	}
	v.rng = r
	v.stats.Notifies++
	subs := v.subs
	for _, s := range subs {
		s.fn(r)
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Range returns the current visible range.
func (v *Virtualizer[T]) Range() Range { return v.rng }

// Config returns the active layout parameters.
func (v *Virtualizer[T]) Config() Config { return v.cfg }

// Offset returns the last scroll offset seen.
func (v *Virtualizer[T]) Offset() float64 { return v.offset }

// Len returns the total item count.
func (v *Virtualizer[T]) Len() int { return len(v.items) }

// Items returns the full item list.
func (v *Virtualizer[T]) Items() []T { return v.items }

// TotalSize returns the spacer extent for the whole list.
func (v *Virtualizer[T]) TotalSize() float64 { return TotalSize(len(v.items), v.cfg) }

// Stats returns recompute and notification counters.
func (v *Virtualizer[T]) Stats() Stats { return v.stats }

// Visible returns the items inside the current range.
func (v *Virtualizer[T]) Visible() []T { return Slice(v.items, v.rng) }

// Each calls fn for every visible item in ascending index order.
func (v *Virtualizer[T]) Each(fn func(index int, item T)) {
	for i, item := range v.Visible() {
		fn(v.rng.Start+i, item)
	}
}

// Map applies render to every visible item of v, in index order.
func Map[T, R any](v *Virtualizer[T], render func(T) R) []R {
	visible := v.Visible()
	out := make([]R, len(visible))
	for i, item := range visible {
		out[i] = render(item)
	}
	return out
}
