package ratelimit

import "time"

// Window is the persisted counter state for one (ip, endpoint) key.
type Window struct {
	WindowStart  time.Time
	RequestCount int
}

// Decide applies the sliding-window policy to the current window state.
// A nil window means no requests have been recorded for the key yet. The
// returned next state is only meaningful when allowed is true; a denied
// request must not advance the counter.
func Decide(now time.Time, w *Window, maxRequests, windowMinutes int) (allowed bool, next Window) {
	windowSize := time.Duration(windowMinutes) * time.Minute

	if w == nil || now.Sub(w.WindowStart) > windowSize {
		return true, Window{WindowStart: now, RequestCount: 1}
	}

	if w.RequestCount < maxRequests {
		return true, Window{WindowStart: w.WindowStart, RequestCount: w.RequestCount + 1}
	}

	return false, *w
}
