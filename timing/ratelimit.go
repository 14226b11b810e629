package timing

import "time"

// Debounce returns a wrapper that delays fn until wait has passed without
// another call. Each call cancels the pending one, so only the last call of a
// burst runs, with that call's arguments.
func Debounce[A any](sched Scheduler, fn func(...A), wait time.Duration) func(...A) {
	var (
		pending TimerID
		armed   bool
	)
	return func(args ...A) {
		if armed {
			sched.ClearTimeout(pending)
		}
		args = append([]A(nil), args...)
		pending = sched.SetTimeout(func() {
			armed = false
			fn(args...)
		}, wait)
		armed = true
	}
}

// Throttle returns a wrapper that runs fn immediately on the first call and
// then drops every call until wait has passed since the last call that ran.
func Throttle[A any](clock Clock, fn func(...A), wait time.Duration) func(...A) {
	var (
		last time.Duration
		ran  bool
	)
	return func(args ...A) {
		now := clock.Now()
		if ran && now-last < wait {
			return
		}
		ran = true
		last = now
		fn(args...)
	}
}
