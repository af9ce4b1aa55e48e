package testsupport

import "sync"

// Recorder captures every value passed to Record, mirroring a call spy.
type Recorder struct {
	mu    sync.Mutex
	calls []any
}

// Record stores value; its signature matches model.FormValue.Update.
func (r *Recorder) Record(value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, value)
}

// Calls returns the recorded arguments in call order.
func (r *Recorder) Calls() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.calls...)
}

// Count reports how many calls were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// First returns the first recorded argument.
func (r *Recorder) First() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[0]
}
