// Package timing provides small scheduling primitives for code that runs on a
// single cooperative loop: a manually advanced [EventLoop] that stands in for
// a host's timer, display-refresh and idle queues, plus callback wrappers
// built on top of it.
//
// The wrappers never start goroutines. Every deferred call is queued on a
// [Scheduler] and runs from [EventLoop.Advance], so callers that drive the
// loop from a game's Update method get all callbacks on that goroutine.
//
//	loop := timing.NewEventLoop()
//	save := timing.Debounce(loop, func(paths ...string) { write(paths) }, 200*time.Millisecond)
//	save("a.txt")
//	save("b.txt")
//	loop.Advance(250 * time.Millisecond) // write runs once with "b.txt"
//
// # Wrappers
//
//   - [Debounce] runs only the last call of a burst, wait after the burst ends.
//   - [Throttle] runs the first call, then drops calls for wait.
//   - [Memoize] caches results keyed by the JSON encoding of the arguments.
//   - [IdleCallback] defers a call to the idle queue when the scheduler has one.
//   - [AnimationLoop] re-requests a frame callback every refresh, optionally
//     capped to a frame rate through a [Gate].
package timing
