package testutil

import "sync"

// FakeLinks is a scripted types.LinkResolver. Targets and failures are
// keyed by entry name; everything else resolves to ("", nil), the
// not-a-shortcut answer.
type FakeLinks struct {
	mu sync.Mutex

	// Targets maps entry names to the target their link resolves to.
	Targets map[string]string

	// Errs maps entry names to an injected resolution failure.
	Errs map[string]error

	calls int
}

// NewFakeLinks creates an empty scripted resolver.
func NewFakeLinks() *FakeLinks {
	return &FakeLinks{
		Targets: make(map[string]string),
		Errs:    make(map[string]error),
	}
}

// ResolveTarget implements types.LinkResolver.
func (f *FakeLinks) ResolveTarget(dir, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if err, ok := f.Errs[name]; ok {
		return "", err
	}
	return f.Targets[name], nil
}

// Calls returns how many times ResolveTarget has run, letting tests
// assert that resolution happened at most once per identity.
func (f *FakeLinks) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
