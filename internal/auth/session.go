// Package auth holds the terminal's login state and the client for the
// backend login route.
package auth

import "sync/atomic"

// Session records whether an operator is logged in on this terminal.
type Session struct {
	loggedIn atomic.Bool
}

// NewSession creates a logged-out session.
func NewSession() *Session {
	return &Session{}
}

// IsLogged reports whether the session is authenticated.
func (s *Session) IsLogged() bool {
	return s.loggedIn.Load()
}

// SetLogged updates the session flag.
func (s *Session) SetLogged(logged bool) {
	s.loggedIn.Store(logged)
}
