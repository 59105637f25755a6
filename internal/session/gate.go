// Package session tracks whether an admin browser session is signed in to
// the backend.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
)

// State of a Gate.
type State int

const (
	Unauthenticated State = iota
	Checking
	Authenticated
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	}
	return "unauthenticated"
}

// Checker asks the backend about the current session.
type Checker interface {
	CheckAuth(ctx context.Context) (apiclient.AuthStatus, error)
}

// Gate resolves the session once, on the first admin request, and then
// answers from memory until it is rechecked or invalidated. Requests that
// arrive while the check is in flight observe Checking.
type Gate struct {
	checker Checker

	mu       sync.Mutex
	state    State
	resolved bool
	admin    *domain.AdminUser
}

func NewGate(c Checker) *Gate {
	return &Gate{checker: c}
}

// Resolve returns the current state, running the check if it never ran.
func (g *Gate) Resolve(ctx context.Context) State {
	g.mu.Lock()
	if g.resolved || g.state == Checking {
		s := g.state
		g.mu.Unlock()
		return s
	}
	g.state = Checking
	g.mu.Unlock()
	return g.check(ctx)
}

// Recheck runs the check again, e.g. right after a login.
func (g *Gate) Recheck(ctx context.Context) State {
	g.mu.Lock()
	g.state = Checking
	g.mu.Unlock()
	return g.check(ctx)
}

func (g *Gate) check(ctx context.Context) State {
	st, err := g.checker.CheckAuth(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.resolved = true
	if err != nil {
		zap.L().Warn("session check failed", zap.Error(err))
	}
	if err != nil || !st.Authenticated {
		g.state = Unauthenticated
		g.admin = nil
		return g.state
	}
	g.state = Authenticated
	g.admin = st.Admin
	return g.state
}

// Invalidate marks the session signed out without asking the backend.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resolved = true
	g.state = Unauthenticated
	g.admin = nil
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Admin returns the signed in operator, if any.
func (g *Gate) Admin() *domain.AdminUser {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.admin
}

// Operator returns the admin username or "unknown".
func (g *Gate) Operator() string {
	if a := g.Admin(); a != nil && a.Username != "" {
		return a.Username
	}
	return "unknown"
}
