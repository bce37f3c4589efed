package resource

import (
	"errors"
	"testing"
)

func TestAcquire(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var d countDeleter
		u, err := Acquire(func() (int, error) { return 10, nil }, d.delete)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !u.Allocated() || u.Get() != 10 {
			t.Fatalf("expected allocated wrapper owning 10, got allocated=%v value=%d", u.Allocated(), u.Get())
		}
		u.Reset()
		if len(d.calls) != 1 {
			t.Errorf("expected one deleter call, got %v", d.calls)
		}
	})

	t.Run("acquisition failure", func(t *testing.T) {
		var d countDeleter
		acquireErr := errors.New("acquire failed")
		u, err := Acquire(func() (int, error) { return 0, acquireErr }, d.delete)
		if !errors.Is(err, acquireErr) {
			t.Fatalf("expected acquire error, got %v", err)
		}
		if u != nil {
			t.Error("expected no wrapper on failure")
		}
		if len(d.calls) != 0 {
			t.Errorf("expected deleter never invoked, got %v", d.calls)
		}
	})
}

func TestAcquireInit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var d countDeleter
		inited := 0
		u, err := AcquireInit(
			func() (int, error) { return 10, nil },
			func(int) error { inited++; return nil },
			d.delete,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inited != 1 {
			t.Errorf("expected init to run once, ran %d times", inited)
		}
		u.Reset()
		if len(d.calls) != 1 || d.calls[0] != 10 {
			t.Errorf("expected one deleter call on 10, got %v", d.calls)
		}
	})

	t.Run("init failure reclaims the acquired value once", func(t *testing.T) {
		var d countDeleter
		initErr := errors.New("init failed")
		u, err := AcquireInit(
			func() (int, error) { return 10, nil },
			func(int) error { return initErr },
			d.delete,
		)
		if !errors.Is(err, initErr) {
			t.Fatalf("expected init error, got %v", err)
		}
		if u != nil {
			t.Error("expected no wrapper on failure")
		}
		if len(d.calls) != 1 || d.calls[0] != 10 {
			t.Errorf("expected exactly one deleter call on 10, got %v", d.calls)
		}
	})
}

func TestAcquireWithTraits(t *testing.T) {
	t.Run("sentinel result is unallocated", func(t *testing.T) {
		var d countDeleter
		u, err := AcquireWithTraits(func() (int, error) { return -1, nil }, d.delete, handleTraits{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Allocated() {
			t.Error("expected unallocated wrapper for the sentinel")
		}
		u.Reset()
		if len(d.calls) != 0 {
			t.Errorf("expected no deleter calls, got %v", d.calls)
		}
	})
}

func TestAcquireInitWithTraits(t *testing.T) {
	t.Run("init skipped for sentinel", func(t *testing.T) {
		var d countDeleter
		inited := 0
		u, err := AcquireInitWithTraits(
			func() (int, error) { return -1, nil },
			func(int) error { inited++; return nil },
			d.delete,
			handleTraits{},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inited != 0 {
			t.Errorf("expected init skipped for an unallocated value, ran %d times", inited)
		}
		if u.Allocated() {
			t.Error("expected unallocated wrapper")
		}
	})

	t.Run("init failure reclaims once", func(t *testing.T) {
		var d countDeleter
		initErr := errors.New("init failed")
		_, err := AcquireInitWithTraits(
			func() (int, error) { return 4, nil },
			func(int) error { return initErr },
			d.delete,
			handleTraits{},
		)
		if !errors.Is(err, initErr) {
			t.Fatalf("expected init error, got %v", err)
		}
		if len(d.calls) != 1 || d.calls[0] != 4 {
			t.Errorf("expected exactly one deleter call on 4, got %v", d.calls)
		}
	})
}

func TestNewChecked(t *testing.T) {
	t.Run("sentinel stays unallocated", func(t *testing.T) {
		var d countDeleter
		u := NewChecked(-1, -1, d.delete)
		if u.Allocated() {
			t.Error("expected unallocated wrapper for the sentinel")
		}
		u.Reset()
		if len(d.calls) != 0 {
			t.Errorf("expected deleter never invoked on the sentinel, got %v", d.calls)
		}
	})

	t.Run("valid value is owned", func(t *testing.T) {
		var d countDeleter
		u := NewChecked(3, -1, d.delete)
		if !u.Allocated() {
			t.Fatal("expected allocated wrapper")
		}
		u.Reset()
		if len(d.calls) != 1 || d.calls[0] != 3 {
			t.Errorf("expected one deleter call on 3, got %v", d.calls)
		}
	})
}
