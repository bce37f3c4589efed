// Package resource provides a generic wrapper that owns a single
// resource value together with the deleter that reclaims it. Ownership
// is exclusive: it can be transferred or given up, but never shared,
// and the deleter runs at most once per allocation no matter how the
// wrapper is moved, swapped or reset.
//
// A wrapper is an ordinary stack-scoped value with no internal
// synchronization. Mutating one instance from multiple goroutines
// without external serialization is a caller error.
package resource

// Deleter reclaims a resource value. It is invoked at most once per
// allocation. Deleters are typically called from deferred reclamation,
// where a panic aborts the surrounding unwind, so they must not panic.
type Deleter[R any] func(R)

// Traits derive the allocation state of a wrapper from the resource
// value itself, removing the stored flag. IsAllocated must report
// false for the value returned by MakeDefault, and neither method may
// panic.
type Traits[R any] interface {
	MakeDefault() R
	IsAllocated(R) bool
}

// Unique owns a resource value and the deleter that reclaims it.
//
// A wrapper is in one of two state modes, fixed at construction: with
// traits, allocation state is derived from the resource value; without,
// an explicit flag tracks it. The zero value is an unallocated
// flag-mode wrapper with no deleter.
//
// Reclamation is explicit: arrange for it at the acquisition site with
//
//	u := resource.New(fd, closeFD)
//	defer u.Reset()
//
// Unique values must not be copied; use Move or Swap to transfer
// ownership.
type Unique[R any] struct {
	res    R
	del    Deleter[R]
	traits Traits[R] // nil selects explicit-flag mode
	owned  bool      // meaningful in flag mode only

	noCopy noCopy
}

// New returns an allocated wrapper owning res.
func New[R any](res R, del Deleter[R]) *Unique[R] {
	return &Unique[R]{res: res, del: del, owned: true}
}

// Empty returns an unallocated wrapper holding the zero resource
// value. The deleter is retained for later ResetTo calls.
func Empty[R any](del Deleter[R]) *Unique[R] {
	return &Unique[R]{del: del}
}

// NewWithTraits returns a traits-mode wrapper. Allocation state is
// derived from res: if the traits report it unallocated, the deleter
// is never invoked on it.
func NewWithTraits[R any](res R, del Deleter[R], traits Traits[R]) *Unique[R] {
	return &Unique[R]{res: res, del: del, traits: traits}
}

// EmptyWithTraits returns an unallocated traits-mode wrapper holding
// the traits' default value.
func EmptyWithTraits[R any](del Deleter[R], traits Traits[R]) *Unique[R] {
	return &Unique[R]{res: traits.MakeDefault(), del: del, traits: traits}
}

// NewChecked compares res to the invalid sentinel and returns a
// wrapper that is allocated only if they differ. The deleter is never
// invoked on a value equal to the sentinel, making it safe to wrap the
// raw result of a fallible acquisition directly.
func NewChecked[R comparable](res, invalid R, del Deleter[R]) *Unique[R] {
	return &Unique[R]{res: res, del: del, owned: res != invalid}
}

// Get returns the stored resource value.
func (u *Unique[R]) Get() R {
	return u.res
}

// Deleter returns the stored deleter.
func (u *Unique[R]) Deleter() Deleter[R] {
	return u.del
}

// Allocated reports whether the wrapper currently owns a resource that
// still needs reclaiming. It never invokes the deleter.
func (u *Unique[R]) Allocated() bool {
	if u.traits != nil {
		return u.traits.IsAllocated(u.res)
	}
	return u.owned
}

// Release gives up ownership without invoking the deleter and returns
// the value that was held. In flag mode the stored value is retained;
// in traits mode it is reset to the traits' default, so callers must
// capture the returned value rather than call Get afterwards.
func (u *Unique[R]) Release() R {
	res := u.res
	u.setDeallocated()
	return res
}

// Reset reclaims the owned resource, if any: the deleter runs once and
// the wrapper becomes unallocated. Resetting an unallocated wrapper
// does nothing.
func (u *Unique[R]) Reset() {
	if u.Allocated() {
		u.del(u.res)
		u.setDeallocated()
	}
}

// ResetTo reclaims the owned resource, then adopts res. In traits mode
// the new allocation state is derived from res; in flag mode the
// wrapper becomes allocated.
func (u *Unique[R]) ResetTo(res R) {
	u.Reset()
	u.res = res
	u.owned = true
}

// Move transfers ownership to a fresh wrapper and returns it. The
// source ends unallocated and inert: resetting or destroying it
// invokes nothing.
func (u *Unique[R]) Move() *Unique[R] {
	moved := &Unique[R]{res: u.res, del: u.del, traits: u.traits, owned: u.owned}
	u.setDeallocated()
	return moved
}

// Adopt reclaims the wrapper's current resource, then takes ownership
// from src, leaving it inert. Adopting a wrapper from itself is a
// no-op.
func (u *Unique[R]) Adopt(src *Unique[R]) {
	if src == u {
		return
	}
	u.Reset()
	u.res = src.res
	u.del = src.del
	u.traits = src.traits
	u.owned = src.owned
	src.setDeallocated()
}

// Swap exchanges the resources, deleters and allocation states of two
// wrappers. No deleter is invoked.
func (u *Unique[R]) Swap(other *Unique[R]) {
	u.res, other.res = other.res, u.res
	u.del, other.del = other.del, u.del
	u.traits, other.traits = other.traits, u.traits
	u.owned, other.owned = other.owned, u.owned
}

func (u *Unique[R]) setDeallocated() {
	if u.traits != nil {
		u.res = u.traits.MakeDefault()
		return
	}
	u.owned = false
}
