package testutil

import "sync"

// FakeEnvWriter records persistent environment variable mutations in memory.
// It implements envreg.Writer without touching the OS.
type FakeEnvWriter struct {
	mu sync.Mutex

	// Values holds the current variable state.
	Values map[string]string

	// Ops records mutations in order, as "set NAME" / "delete NAME".
	Ops []string

	// SetErr, when non-nil, is returned by every Set call.
	SetErr error

	// DeleteErr, when non-nil, is returned by every Delete call.
	DeleteErr error
}

// NewFakeEnvWriter creates an empty FakeEnvWriter.
func NewFakeEnvWriter() *FakeEnvWriter {
	return &FakeEnvWriter{Values: make(map[string]string)}
}

// Set records the variable.
func (w *FakeEnvWriter) Set(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.SetErr != nil {
		return w.SetErr
	}
	w.Values[name] = value
	w.Ops = append(w.Ops, "set "+name)
	return nil
}

// Delete removes the variable if present. Deleting a missing variable is
// not an error, mirroring the real registry writer.
func (w *FakeEnvWriter) Delete(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.DeleteErr != nil {
		return w.DeleteErr
	}
	delete(w.Values, name)
	w.Ops = append(w.Ops, "delete "+name)
	return nil
}

// Get returns the current value and whether the variable is set.
func (w *FakeEnvWriter) Get(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.Values[name]
	return v, ok
}
