package session

import "sync"

// Gate is an admin flag unlocked by an exact passcode match
type Gate struct {
	mu       sync.RWMutex
	passcode string
	admin    bool
}

// NewGate returns a locked gate for passcode
func NewGate(passcode string) *Gate {
	return &Gate{passcode: passcode}
}

// IsAdmin reports whether the gate is unlocked
func (g *Gate) IsAdmin() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.admin
}

// Toggle locks an unlocked gate without prompting. A locked gate asks prompt for the
// passcode and unlocks only on an exact match.
func (g *Gate) Toggle(prompt func() string) error {
	g.mu.Lock()
	if g.admin {
		g.admin = false
		g.mu.Unlock()
		return nil
	}
	g.mu.Unlock()

	// prompt runs unlocked, it may block on the caller
	return g.Unlock(prompt())
}

// Unlock sets the gate to admin when passcode matches
func (g *Gate) Unlock(passcode string) error {
	if !g.Check(passcode) {
		return ErrIncorrectPasscode
	}
	g.mu.Lock()
	g.admin = true
	g.mu.Unlock()
	return nil
}

// Lock drops admin
func (g *Gate) Lock() {
	g.mu.Lock()
	g.admin = false
	g.mu.Unlock()
}

// Check reports whether passcode matches without changing the gate
func (g *Gate) Check(passcode string) bool {
	return passcode == g.passcode
}
