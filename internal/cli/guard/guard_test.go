package guard

import (
	"testing"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/session"
)

func loadingSession() session.Session {
	return session.Session{Loading: true}
}

func anonSession() session.Session {
	return session.Session{}
}

func userSession(role string) session.Session {
	return session.Session{
		User:  &session.User{ID: 1, Name: "Ana", Role: role},
		Token: "tok",
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		sess       session.Session
		path       string
		wantState  State
		wantTarget string
	}{
		{
			name:      "loading makes no decision",
			sess:      loadingSession(),
			path:      access.HomePath,
			wantState: StateLoading,
		},
		{
			name:       "anonymous on protected path goes to login",
			sess:       anonSession(),
			path:       access.HomePath,
			wantState:  StateRedirectToLogin,
			wantTarget: access.LoginPath,
		},
		{
			name:      "anonymous on login is allowed",
			sess:      anonSession(),
			path:      access.LoginPath,
			wantState: StateAllow,
		},
		{
			name:       "signed-in on login bounces home",
			sess:       userSession("ADMIN"),
			path:       access.LoginPath,
			wantState:  StateRedirectToHome,
			wantTarget: access.HomePath,
		},
		{
			name:      "signed-in on open screen is allowed",
			sess:      userSession(""),
			path:      access.ComunicadosAllPath,
			wantState: StateAllow,
		},
		{
			name:       "wrong role bounces home",
			sess:       userSession("MARKETING"),
			path:       access.VerAtestadosPath,
			wantState:  StateRedirectToHome,
			wantTarget: access.HomePath,
		},
		{
			name:      "matching role is allowed",
			sess:      userSession("RH"),
			path:      access.VerAtestadosPath,
			wantState: StateAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New().Evaluate(tt.sess, tt.path)
			if d.State != tt.wantState {
				t.Fatalf("state = %v, want %v", d.State, tt.wantState)
			}
			if d.Target != tt.wantTarget {
				t.Errorf("target = %q, want %q", d.Target, tt.wantTarget)
			}
		})
	}
}

func TestEvaluateRedirectOnce(t *testing.T) {
	g := New()
	sess := anonSession()

	first := g.Evaluate(sess, access.HomePath)
	if !first.Redirect {
		t.Fatal("first evaluation should issue the redirect")
	}

	// Re-evaluating the same situation must not re-issue it
	second := g.Evaluate(sess, access.HomePath)
	if second.State != StateRedirectToLogin {
		t.Fatalf("state = %v, want %v", second.State, StateRedirectToLogin)
	}
	if second.Redirect {
		t.Error("second evaluation should not re-issue the redirect")
	}
}

func TestEvaluateRedirectMemoryResetsOnAllow(t *testing.T) {
	g := New()

	d := g.Evaluate(anonSession(), access.HomePath)
	if !d.Redirect {
		t.Fatal("expected initial redirect")
	}

	// Signing in and landing on an allowed screen clears the memory
	if d := g.Evaluate(userSession("ADMIN"), access.HomePath); d.State != StateAllow {
		t.Fatalf("state = %v, want %v", d.State, StateAllow)
	}

	// A later identical redirect is issued again
	d = g.Evaluate(anonSession(), access.HomePath)
	if !d.Redirect {
		t.Error("redirect after an allow should be issued again")
	}
}

func TestEvaluateRedirectTargetChange(t *testing.T) {
	g := New()

	if d := g.Evaluate(anonSession(), access.HomePath); !d.Redirect {
		t.Fatal("expected login redirect")
	}

	// Different target, so the redirect fires even without an allow between
	d := g.Evaluate(userSession(""), access.LoginPath)
	if d.State != StateRedirectToHome {
		t.Fatalf("state = %v, want %v", d.State, StateRedirectToHome)
	}
	if !d.Redirect {
		t.Error("redirect to a new target should be issued")
	}
}
