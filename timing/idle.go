package timing

import "time"

// DefaultIdleTimeout is used by IdleCallback when IdleOptions.Timeout is zero.
const DefaultIdleTimeout = time.Second

// IdleOptions configures IdleCallback.
type IdleOptions struct {
	// Timeout forces the call to run after this long even if the loop never
	// goes idle. Zero means DefaultIdleTimeout; negative means no timeout.
	Timeout time.Duration
}

// IdleCallback returns a wrapper that defers fn to the scheduler's idle queue
// when it implements IdleRequester, and to a MinTimeout timeout otherwise.
func IdleCallback[A any](sched Scheduler, fn func(...A), opts IdleOptions) func(...A) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultIdleTimeout
	}
	if timeout < 0 {
		timeout = 0
	}
	idle, hasIdle := sched.(IdleRequester)
	return func(args ...A) {
		args = append([]A(nil), args...)
		if hasIdle {
			idle.RequestIdle(func(IdleDeadline) { fn(args...) }, timeout)
			return
		}
		sched.SetTimeout(func() { fn(args...) }, MinTimeout)
	}
}
