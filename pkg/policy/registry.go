package policy

import (
	"sync"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

// Registry maps policy keys to fragments. Entries are only added while the
// configuration is being assembled; once sealed the registry is read-only.
type Registry struct {
	mu        sync.RWMutex
	keys      []string
	fragments map[string]Fragment
	sealed    bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{fragments: make(map[string]Fragment)}
}

// Register adds a fragment under key. Registering the same key again with an
// identical fragment is a no-op; a different fragment fails with DuplicateKey.
func (r *Registry) Register(key string, fragment Fragment) error {
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "policy key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return errors.Newf(errors.ErrRegistrySealed, "cannot register policy %q: registry is sealed", key).
			WithDetail("key", key)
	}

	if existing, ok := r.fragments[key]; ok {
		if existing.Equal(fragment) {
			return nil
		}
		return errors.Newf(errors.ErrDuplicateKey, "policy %q is already registered with a different definition", key).
			WithDetail("key", key)
	}

	r.keys = append(r.keys, key)
	r.fragments[key] = fragment.clone()
	return nil
}

// Lookup returns the fragment registered under key
func (r *Registry) Lookup(key string) (Fragment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fragment, ok := r.fragments[key]
	if !ok {
		return Fragment{}, unknownKey(key)
	}
	return fragment.clone(), nil
}

// Has reports whether key is registered
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fragments[key]
	return ok
}

// Keys returns the registered keys in registration order
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of registered fragments
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

// Merge registers every entry of other, in other's registration order
func (r *Registry) Merge(other *Registry) error {
	if other == nil {
		return nil
	}
	for _, key := range other.Keys() {
		fragment, err := other.Lookup(key)
		if err != nil {
			return err
		}
		if err := r.Register(key, fragment); err != nil {
			return err
		}
	}
	return nil
}

// Seal makes the registry read-only
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether Seal has been called
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

func unknownKey(key string) *errors.Error {
	return errors.Newf(errors.ErrUnknownPolicyReference, "unknown policy %q", key).
		WithDetail("key", key)
}
