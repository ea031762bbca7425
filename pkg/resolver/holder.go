package resolver

import (
	"sync/atomic"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/rules"
)

// Builder produces a fresh Resolver, typically by re-reading configuration
type Builder func() (*Resolver, error)

// Holder publishes the current Resolver snapshot. Readers never block and
// always see a complete snapshot; writers replace it in one step.
type Holder struct {
	current atomic.Pointer[Resolver]
}

// NewHolder returns a Holder publishing r
func NewHolder(r *Resolver) *Holder {
	h := &Holder{}
	h.current.Store(r)
	return h
}

// Current returns the published snapshot, nil if none was stored yet
func (h *Holder) Current() *Resolver {
	return h.current.Load()
}

// Swap publishes next and returns the previous snapshot
func (h *Holder) Swap(next *Resolver) *Resolver {
	return h.current.Swap(next)
}

// Reload builds a new snapshot and publishes it. When build fails the
// current snapshot stays in place and the error is returned.
func (h *Holder) Reload(build Builder) (*Resolver, error) {
	next, err := build()
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, errors.New(errors.ErrInternal, "reload produced no configuration")
	}
	h.current.Store(next)
	return next, nil
}

// Resolve resolves file against the current snapshot
func (h *Holder) Resolve(file string) (rules.RuleSet, error) {
	r, err := h.snapshot()
	if err != nil {
		return nil, err
	}
	return r.Resolve(file)
}

// Describe describes file against the current snapshot
func (h *Holder) Describe(file string) (*Trace, error) {
	r, err := h.snapshot()
	if err != nil {
		return nil, err
	}
	return r.Describe(file)
}

func (h *Holder) snapshot() (*Resolver, error) {
	r := h.current.Load()
	if r == nil {
		return nil, errors.New(errors.ErrInternal, "no configuration loaded")
	}
	return r, nil
}
