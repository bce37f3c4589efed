package guard

// Failed returns a predicate reporting whether the error pointed to by
// errp is non-nil. It is the trigger behind OnFailure and can be
// combined with When to build richer conditions.
func Failed(errp *error) func() bool {
	return func() bool { return *errp != nil }
}

// Succeeded returns the complement of Failed(errp).
func Succeeded(errp *error) func() bool {
	return func() bool { return *errp == nil }
}
