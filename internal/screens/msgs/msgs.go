// Package msgs defines application-level messages exchanged between
// screens and the root model.
package msgs

import (
	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/store"
)

// SessionStartedMsg is emitted after a successful login.
type SessionStartedMsg struct {
	Session *auth.Session
	User    *store.User
}

// SessionEndedMsg requests a logout and a return to the welcome screen.
type SessionEndedMsg struct{}
