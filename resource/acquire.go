package resource

// Acquire runs the acquisition function and wraps its result in an
// allocated wrapper. If the acquisition fails, the error is returned
// as-is and the deleter is never invoked.
func Acquire[R any](acquire func() (R, error), del Deleter[R]) (*Unique[R], error) {
	res, err := acquire()
	if err != nil {
		return nil, err
	}
	return New(res, del), nil
}

// AcquireInit runs the acquisition function, then the initialization
// step on the acquired value. If init fails, the deleter is invoked
// exactly once on the acquired value before the error is returned, so
// a half-constructed resource is never leaked.
func AcquireInit[R any](acquire func() (R, error), init func(R) error, del Deleter[R]) (*Unique[R], error) {
	res, err := acquire()
	if err != nil {
		return nil, err
	}
	if err := init(res); err != nil {
		del(res)
		return nil, err
	}
	return New(res, del), nil
}

// AcquireWithTraits is Acquire for a traits-mode wrapper. Allocation
// state is derived from the acquired value, so an acquisition that
// reports success but yields the traits' default produces an
// unallocated wrapper.
func AcquireWithTraits[R any](acquire func() (R, error), del Deleter[R], traits Traits[R]) (*Unique[R], error) {
	res, err := acquire()
	if err != nil {
		return nil, err
	}
	return NewWithTraits(res, del, traits), nil
}

// AcquireInitWithTraits is AcquireInit for a traits-mode wrapper. The
// init step and its failure cleanup run only when the traits report
// the acquired value allocated.
func AcquireInitWithTraits[R any](acquire func() (R, error), init func(R) error, del Deleter[R], traits Traits[R]) (*Unique[R], error) {
	res, err := acquire()
	if err != nil {
		return nil, err
	}
	if traits.IsAllocated(res) {
		if err := init(res); err != nil {
			del(res)
			return nil, err
		}
	}
	return NewWithTraits(res, del, traits), nil
}
