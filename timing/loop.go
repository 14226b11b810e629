package timing

import (
	"sort"
	"time"
)

// FrameFunc is invoked once per display refresh with the loop's current time.
type FrameFunc func(now time.Duration)

// FrameID identifies a pending frame request.
type FrameID uint64

// TimerID identifies a pending timeout.
type TimerID uint64

// IdleID identifies a pending idle request.
type IdleID uint64

// Clock reports the current time of a loop as an offset from its start.
type Clock interface {
	Now() time.Duration
}

// Scheduler is the host facility the wrappers in this package rely on.
// Implementations run every callback on the loop's own goroutine.
type Scheduler interface {
	Clock
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
	SetTimeout(fn func(), d time.Duration) TimerID
	ClearTimeout(id TimerID)
}

// IdleDeadline is passed to idle callbacks.
type IdleDeadline struct {
	// TimeRemaining is the part of the idle budget left when the callback starts.
	TimeRemaining time.Duration
	// DidTimeout is true when the callback runs because its timeout expired
	// rather than because the loop had spare time.
	DidTimeout bool
}

// IdleRequester is optionally implemented by a Scheduler that can run work
// when a refresh finishes early.
type IdleRequester interface {
	RequestIdle(fn func(IdleDeadline), timeout time.Duration) IdleID
	CancelIdle(id IdleID)
}

// MinTimeout is the smallest delay a timeout can be scheduled with. Zero and
// negative delays are raised to it so a self-rescheduling timeout cannot spin
// forever inside a single Advance.
const MinTimeout = time.Millisecond

// DefaultIdleBudget is the wall-clock time per Advance that idle callbacks
// may consume before the rest wait for the next Advance.
const DefaultIdleBudget = 4 * time.Millisecond

type timer struct {
	id  TimerID
	due time.Duration
	seq uint64
	fn  func()
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

type idleRequest struct {
	id       IdleID
	fn       func(IdleDeadline)
	deadline time.Duration // loop time at which the request times out; 0 = never
}

// EventLoop is a manually advanced, single-threaded event loop. The host
// calls Advance once per display refresh; Advance runs due timeouts, then the
// frame callbacks requested before this refresh, then idle callbacks.
//
// EventLoop is not safe for concurrent use. All methods must be called from
// the goroutine that calls Advance.
type EventLoop struct {
	// IdleBudget caps the wall-clock time idle callbacks may use per Advance.
	// Zero means DefaultIdleBudget.
	IdleBudget time.Duration

	now    time.Duration
	nextID uint64
	seq    uint64

	timers  []timer
	frames  []frameRequest
	running []frameRequest // frame requests being run by the current Advance
	idle    []idleRequest
}

// NewEventLoop creates an event loop whose clock starts at zero.
func NewEventLoop() *EventLoop {
	return &EventLoop{}
}

// Now returns the loop's current time. While a timeout is running, Now reports
// the time the timeout was due, not the time Advance was called with.
func (l *EventLoop) Now() time.Duration {
	return l.now
}

func (l *EventLoop) id() uint64 {
	l.nextID++
	return l.nextID
}

// RequestFrame schedules fn to run on the next Advance. Requests made while
// frame callbacks are running are deferred to the following Advance.
func (l *EventLoop) RequestFrame(fn FrameFunc) FrameID {
	id := FrameID(l.id())
	l.frames = append(l.frames, frameRequest{id: id, fn: fn})
	return id
}

// CancelFrame removes a pending frame request. A request cancelled by another
// frame callback of the same Advance does not run. Unknown or already-run IDs
// are ignored.
func (l *EventLoop) CancelFrame(id FrameID) {
	for i := range l.frames {
		if l.frames[i].id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].fn = nil
			return
		}
	}
}

// SetTimeout schedules fn to run once the loop's clock reaches Now()+d.
func (l *EventLoop) SetTimeout(fn func(), d time.Duration) TimerID {
	if d < MinTimeout {
		d = MinTimeout
	}
	id := TimerID(l.id())
	l.seq++
	l.timers = append(l.timers, timer{id: id, due: l.now + d, seq: l.seq, fn: fn})
	return id
}

// ClearTimeout cancels a pending timeout. Unknown or fired IDs are ignored.
func (l *EventLoop) ClearTimeout(id TimerID) {
	for i := range l.timers {
		if l.timers[i].id == id {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}

// RequestIdle queues fn to run when an Advance has idle budget left. A positive
// timeout forces the callback to run on the first Advance at or after
// Now()+timeout regardless of budget.
func (l *EventLoop) RequestIdle(fn func(IdleDeadline), timeout time.Duration) IdleID {
	id := IdleID(l.id())
	req := idleRequest{id: id, fn: fn}
	if timeout > 0 {
		req.deadline = l.now + timeout
	}
	l.idle = append(l.idle, req)
	return id
}

// CancelIdle removes a pending idle request.
func (l *EventLoop) CancelIdle(id IdleID) {
	for i := range l.idle {
		if l.idle[i].id == id {
			l.idle = append(l.idle[:i], l.idle[i+1:]...)
			return
		}
	}
}

// Pending reports how many timeouts, frame requests and idle requests are
// queued.
func (l *EventLoop) Pending() (timers, frames, idle int) {
	return len(l.timers), len(l.frames), len(l.idle)
}

// Advance moves the clock to now and runs everything that became due. Time
// never moves backwards: a now earlier than Now() is treated as Now().
func (l *EventLoop) Advance(now time.Duration) {
	if now < l.now {
		now = l.now
	}

	l.runTimers(now)
	l.now = now

	l.running = l.frames
	l.frames = nil
	for i := range l.running {
		fn := l.running[i].fn
		if fn == nil {
			continue
		}
		l.running[i].fn = nil
		fn(now)
	}
	l.running = nil

	l.runIdle(now)
}

// runTimers fires timeouts in due order, moving the clock to each due time.
// Timeouts scheduled by a running timeout fire in the same pass if they come
// due before now.
func (l *EventLoop) runTimers(now time.Duration) {
	for {
		if len(l.timers) == 0 {
			return
		}
		sort.SliceStable(l.timers, func(i, j int) bool {
			if l.timers[i].due != l.timers[j].due {
				return l.timers[i].due < l.timers[j].due
			}
			return l.timers[i].seq < l.timers[j].seq
		})
		t := l.timers[0]
		if t.due > now {
			return
		}
		l.timers = l.timers[1:]
		l.now = t.due
		t.fn()
	}
}

func (l *EventLoop) runIdle(now time.Duration) {
	if len(l.idle) == 0 {
		return
	}
	budget := l.IdleBudget
	if budget <= 0 {
		budget = DefaultIdleBudget
	}
	start := time.Now()

	queue := l.idle
	l.idle = nil
	for i, req := range queue {
		timedOut := req.deadline > 0 && now >= req.deadline
		remaining := budget - time.Since(start)
		if remaining <= 0 && !timedOut {
			// Out of budget: keep this and the rest for the next Advance,
			// ahead of anything queued by the callbacks that did run.
			l.idle = append(append([]idleRequest(nil), queue[i:]...), l.idle...)
			return
		}
		if remaining < 0 {
			remaining = 0
		}
		req.fn(IdleDeadline{TimeRemaining: remaining, DidTimeout: timedOut})
	}
}
