package timing

import "time"

// AnimationLoop re-requests a frame callback on every refresh of a Scheduler
// and forwards the refreshes admitted by its Gate to the user callback.
type AnimationLoop struct {
	sched    Scheduler
	callback FrameFunc
	gate     Gate
	frame    FrameID
	running  bool
}

// NewAnimationLoop creates a stopped loop. fpsLimit caps how often callback
// runs; zero or negative runs it on every refresh.
func NewAnimationLoop(sched Scheduler, callback FrameFunc, fpsLimit int) *AnimationLoop {
	return &AnimationLoop{
		sched:    sched,
		callback: callback,
		gate:     NewGate(fpsLimit),
	}
}

// Start begins requesting frames and returns a function that stops the loop.
// Starting a running loop is a no-op; the returned stop function is still
// valid.
func (a *AnimationLoop) Start() (stop func()) {
	if !a.running {
		a.running = true
		a.gate.Reset()
		a.frame = a.sched.RequestFrame(a.animate)
	}
	return a.Stop
}

// Stop cancels the pending frame request. Stopping a stopped loop is a no-op.
func (a *AnimationLoop) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.sched.CancelFrame(a.frame)
	a.frame = 0
}

// Running reports whether the loop has a frame request outstanding.
func (a *AnimationLoop) Running() bool {
	return a.running
}

func (a *AnimationLoop) animate(now time.Duration) {
	if !a.running {
		return
	}
	// Reschedule first so the callback may Stop the loop.
	a.frame = a.sched.RequestFrame(a.animate)
	if a.gate.Allow(now) {
		a.callback(now)
	}
}
