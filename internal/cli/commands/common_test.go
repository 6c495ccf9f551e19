package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCheckInput(t *testing.T) {
	tests := []struct {
		name    string
		input   loginInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: loginInput{Email: "ana@example.com", Password: "secret"},
		},
		{
			name:    "missing password",
			input:   loginInput{Email: "ana@example.com"},
			wantErr: "password is required",
		},
		{
			name:    "bad email",
			input:   loginInput{Email: "not-an-email", Password: "secret"},
			wantErr: "not a valid email",
		},
		{
			name:    "multiple failures are joined",
			input:   loginInput{},
			wantErr: "email is required; password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkInput(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("checkInput() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}

	got := tokenExpiry(signed)
	if !got.Equal(exp) {
		t.Errorf("tokenExpiry() = %v, want %v", got, exp)
	}
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	if got := tokenExpiry("not-a-jwt"); !got.IsZero() {
		t.Errorf("tokenExpiry() = %v, want zero time", got)
	}
}

func TestTokenExpiryNoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	if got := tokenExpiry(signed); !got.IsZero() {
		t.Errorf("tokenExpiry() = %v, want zero time", got)
	}
}
