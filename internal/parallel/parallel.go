// Package parallel provides small structured-concurrency primitives shared by
// the adders and the orchestration layer: a first-error collector and a
// two-way fork-join helper.
package parallel

import "sync"

// ErrorCollector captures the first non-nil error reported by a group of
// concurrent goroutines. Subsequent errors are dropped; nil errors are
// ignored. The zero value is ready to use.
type ErrorCollector struct {
	mu  sync.Mutex
	err error
}

// SetError records err if it is the first non-nil error seen.
// Safe for concurrent use.
func (ec *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	ec.mu.Lock()
	if ec.err == nil {
		ec.err = err
	}
	ec.mu.Unlock()
}

// Err returns the first error recorded, or nil if none occurred.
func (ec *ErrorCollector) Err() error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.err
}

// Pair runs f and g concurrently and blocks until both have completed.
// It returns the first error reported by either function. Pair never
// returns before both functions have finished, so callers may safely read
// any memory the functions wrote once Pair returns.
func Pair(f, g func() error) error {
	var ec ErrorCollector
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		ec.SetError(f())
	}()

	ec.SetError(g())
	wg.Wait()

	return ec.Err()
}
