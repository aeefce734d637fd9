package placement

import (
	"sync"
	"time"

	"pod-studio/internal/product"
)

// DefaultDebounce is the delay between a geometry change and the
// revalidation it triggers. Intermediate drag frames within the window
// are coalesced into a single recomputation.
const DefaultDebounce = 150 * time.Millisecond

// Session owns the overlay geometry for one editing session and reports a
// fresh Result to its callback whenever the geometry or product changes.
//
// Debounce is a policy of this adapter, not of the validation itself:
// a zero duration makes every change recompute synchronously. A pending
// debounced recomputation is cancelled and rescheduled by a newer change,
// and discarded entirely by Close or a product swap.
type Session struct {
	mu sync.Mutex

	spec     product.Spec
	geom     OverlayGeometry
	surface  Surface
	debounce time.Duration

	// Auto-placement runs on product association only until the user
	// drags or resizes; the flag resets on every product swap.
	userPlaced bool

	timer  *time.Timer
	gen    uint64 // invalidates in-flight timers
	closed bool

	last     Result
	onResult func(Result)
}

// NewSession creates a session over the given surface. The callback
// receives every recomputed Result; it may be nil. The initial overlay is
// a 200x200 px rectangle centered on the surface.
func NewSession(s Surface, debounce time.Duration, onResult func(Result)) *Session {
	return &Session{
		surface:  s,
		debounce: debounce,
		geom: OverlayGeometry{
			X:      s.Width/2 - 100,
			Y:      s.Height/2 - 100,
			Width:  200,
			Height: 200,
		},
		onResult: onResult,
	}
}

// SetProduct associates a product spec with the session. Any pending
// recomputation for the previous product is discarded. While the user has
// not positioned the overlay themselves, the overlay moves to the new
// product's optimal placement.
func (s *Session) SetProduct(spec product.Spec) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cancelPendingLocked()
	s.spec = spec
	s.userPlaced = false

	if g, ok := AutoPlace(spec, s.geom.Width, s.geom.Height, s.surface); ok {
		s.geom = g
	}
	s.mu.Unlock()

	// Product association validates immediately; debounce only applies
	// to interactive geometry changes.
	s.recompute()
}

// SetGeometry records a user-driven overlay change and schedules a
// revalidation according to the debounce policy.
func (s *Session) SetGeometry(g OverlayGeometry) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.geom = g
	s.userPlaced = true

	if s.debounce <= 0 {
		s.mu.Unlock()
		s.recompute()
		return
	}

	s.cancelPendingLocked()
	gen := s.gen
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		stale := s.closed || gen != s.gen
		s.mu.Unlock()
		if !stale {
			s.recompute()
		}
	})
	s.mu.Unlock()
}

// Geometry returns the current overlay geometry.
func (s *Session) Geometry() OverlayGeometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geom
}

// Result returns the most recently computed placement result.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Product returns the associated product spec, or nil.
func (s *Session) Product() product.Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

// UserPlaced reports whether the user has dragged or resized the overlay
// since the current product was selected.
func (s *Session) UserPlaced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userPlaced
}

// Revalidate recomputes the current placement immediately, bypassing
// any pending debounce window.
func (s *Session) Revalidate() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cancelPendingLocked()
	s.mu.Unlock()
	s.recompute()
}

// SetDebounce changes the debounce policy for subsequent geometry changes.
func (s *Session) SetDebounce(d time.Duration) {
	s.mu.Lock()
	s.debounce = d
	s.mu.Unlock()
}

// Close discards any pending recomputation without invoking the callback.
// The session ignores further changes.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cancelPendingLocked()
}

// cancelPendingLocked stops the pending timer, if any, and bumps the
// generation so an already-fired timer body becomes a no-op.
func (s *Session) cancelPendingLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// recompute runs the validation pipeline on the current state and
// delivers the result.
func (s *Session) recompute() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	res := Evaluate(s.geom, s.surface, s.spec)
	s.last = res
	cb := s.onResult
	s.mu.Unlock()

	if cb != nil {
		cb(res)
	}
}
