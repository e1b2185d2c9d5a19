package theme

import "sync"

// Scope is an explicit stack of active themes for tree walks that do not
// thread a context.Context: push on subtree entry, pop on exit, read the
// innermost value with Current. The zero value is ready to use.
type Scope struct {
	mu    sync.Mutex
	stack []Theme
}

func NewScope() *Scope {
	return &Scope{}
}

// Push makes t the innermost active theme.
func (s *Scope) Push(t Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = append(s.stack, t)
}

// Pop discards the innermost theme, restoring whatever was active before.
// Popping an empty scope is a no-op.
func (s *Scope) Pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

// Current returns the innermost active theme, or the default light theme
// when the scope is empty.
func (s *Scope) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.stack); n > 0 {
		return s.stack[n-1]
	}
	return Default()
}
