package guard

// Final unconditionally runs its action when the scope is left. Unlike
// Guard it has no armed state and cannot be released or moved; the
// only way to keep the action from running is to never call Done,
// which defeats the point.
type Final struct {
	action func()
	fired  bool

	noCopy noCopy
}

// Finally returns a guard that always fires.
func Finally(action func()) *Final {
	return &Final{action: action}
}

// Done runs the action. Subsequent calls do nothing.
func (f *Final) Done() {
	if f.fired {
		return
	}
	f.fired = true
	f.action()
}
