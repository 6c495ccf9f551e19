// Package guard decides whether a screen may render for the current
// session, redirecting to login or home otherwise.
package guard

import (
	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/session"
)

// State is the guard's decision for a (session, path) pair.
type State int

const (
	// StateLoading means the session is still restoring; render nothing
	// and make no redirect decision.
	StateLoading State = iota
	StateRedirectToLogin
	StateRedirectToHome
	StateAllow
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRedirectToLogin:
		return "redirect-to-login"
	case StateRedirectToHome:
		return "redirect-to-home"
	case StateAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Decision carries the state plus the redirect target, when any. Redirect
// is false when the identical redirect was already issued and must not be
// repeated.
type Decision struct {
	State    State
	Target   string
	Redirect bool
}

// Guard evaluates route access for session snapshots. It remembers the last
// redirect target issued so recomputations don't re-issue the identical
// redirect; the memory resets once a path is allowed. Not safe for
// concurrent use; each navigation flow owns its Guard.
type Guard struct {
	lastRedirect string
}

// New returns a fresh Guard with no redirect memory.
func New() *Guard {
	return &Guard{}
}

// Evaluate computes the decision for path under sess.
func (g *Guard) Evaluate(sess session.Session, path string) Decision {
	if sess.Loading {
		return Decision{State: StateLoading}
	}

	authed := sess.Authed()
	isLogin := path == access.LoginPath

	if !authed && !isLogin {
		return g.redirect(StateRedirectToLogin, access.LoginPath)
	}
	if authed && isLogin {
		return g.redirect(StateRedirectToHome, access.HomePath)
	}
	if authed && !access.CanAccess(&access.User{Role: sess.User.Role}, path) {
		return g.redirect(StateRedirectToHome, access.HomePath)
	}

	g.lastRedirect = ""
	return Decision{State: StateAllow}
}

func (g *Guard) redirect(state State, target string) Decision {
	issue := g.lastRedirect != target
	if issue {
		g.lastRedirect = target
	}
	return Decision{State: state, Target: target, Redirect: issue}
}
