package session

// Decision is the outcome of a guard check.
type Decision struct {
	// Allowed reports whether the protected operation may proceed.
	Allowed bool

	// LoginHint is the message to show when denied.
	LoginHint string
}

// Guard gates protected commands on the manager's state. It keeps no
// state of its own; every check reads the manager at evaluation time.
type Guard struct {
	sessions *Manager
}

// NewGuard creates a guard over the given manager.
func NewGuard(sessions *Manager) *Guard {
	return &Guard{sessions: sessions}
}

// Check allows the operation when a session is live, otherwise denies
// with a hint pointing at the login command.
func (g *Guard) Check() Decision {
	if g.sessions.IsAuthenticated() {
		return Decision{Allowed: true}
	}
	return Decision{LoginHint: "not logged in (run: ttrack login)"}
}
