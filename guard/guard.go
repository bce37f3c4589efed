// Package guard provides conditional scope-exit guards: small values
// that run a registered action when control leaves a scope, gated by
// how the scope is being left. The firing point is an explicit
// deferred call, placed where the guard is created:
//
//	g := guard.OnFailure(&err, func() { tx.Rollback() })
//	defer g.Done()
//
// or, when the guard is never deactivated:
//
//	defer guard.OnFailure(&err, func() { tx.Rollback() }).Done()
//
// Guards observe the outcome of a scope through an explicit error
// value, normally a pointer to the function's named error return. A
// panic unwinding through the scope still runs deferred OnExit and
// Finally actions, but does not count as a failure for OnFailure
// unless the scope converts it to an error.
//
// Guards hold no locks; sharing one instance across goroutines is a
// caller error.
package guard

// A Guard holds an action and fires it at most once when Done is
// called, provided the guard is armed and its trigger condition holds
// at that moment. Guards start armed; Release, SetActive(false) and
// being the source of a Move disarm them.
type Guard struct {
	action func()
	cond   func() bool // nil fires unconditionally
	armed  bool
	fired  bool

	noCopy noCopy
}

// OnExit returns a guard that fires whenever it is still armed when
// the scope is left, on both success and failure paths.
func OnExit(action func()) *Guard {
	return &Guard{action: action, armed: true}
}

// When returns a guard that fires if cond returns true at the time the
// scope is left. The condition is evaluated once, inside Done.
func When(cond func() bool, action func()) *Guard {
	return &Guard{action: action, cond: cond, armed: true}
}

// OnFailure returns a guard that fires if *errp is non-nil when the
// scope is left. errp is normally a pointer to the enclosing
// function's named error return.
func OnFailure(errp *error, action func()) *Guard {
	return When(Failed(errp), action)
}

// OnSuccess returns a guard that fires if *errp is nil when the scope
// is left. Exactly one of an OnFailure/OnSuccess pair over the same
// error fires.
func OnSuccess(errp *error, action func()) *Guard {
	return When(Succeeded(errp), action)
}

// Active reports whether the guard would evaluate its trigger on Done.
func (g *Guard) Active() bool {
	return g.armed
}

// SetActive arms or disarms the guard. A guard that has already seen
// Done stays inert.
func (g *Guard) SetActive(active bool) {
	if g.fired {
		return
	}
	g.armed = active
}

// Release disarms the guard; the action will not run.
func (g *Guard) Release() {
	g.armed = false
}

// Move transfers the action, condition and armed state to a fresh
// guard and disarms the source.
func (g *Guard) Move() *Guard {
	moved := &Guard{action: g.action, cond: g.cond, armed: g.armed, fired: g.fired}
	g.armed = false
	return moved
}

// Done fires the guard if it is armed and the trigger condition holds,
// then leaves it inert. Calling Done again does nothing, so the action
// runs at most once. Intended to be deferred at the creation site.
func (g *Guard) Done() {
	if g.fired {
		return
	}
	g.fired = true
	if g.armed && (g.cond == nil || g.cond()) {
		g.action()
	}
	g.armed = false
}
