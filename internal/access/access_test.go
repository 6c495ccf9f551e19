package access

import "testing"

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name string
		user *User
		path string
		want bool
	}{
		{
			name: "login is public for anonymous",
			user: nil,
			path: LoginPath,
			want: true,
		},
		{
			name: "login is public for signed-in users",
			user: &User{Role: "ADMIN"},
			path: LoginPath,
			want: true,
		},
		{
			name: "home requires a session",
			user: nil,
			path: HomePath,
			want: false,
		},
		{
			name: "home allows any signed-in user",
			user: &User{Role: ""},
			path: HomePath,
			want: true,
		},
		{
			name: "role route rejects anonymous",
			user: nil,
			path: VerAtestadosPath,
			want: false,
		},
		{
			name: "role route rejects user without role",
			user: &User{Role: ""},
			path: VerAtestadosPath,
			want: false,
		},
		{
			name: "role route rejects wrong role",
			user: &User{Role: "MARKETING"},
			path: VerAtestadosPath,
			want: false,
		},
		{
			name: "role route accepts listed role",
			user: &User{Role: "RH"},
			path: VerAtestadosPath,
			want: true,
		},
		{
			name: "role comparison is case-insensitive",
			user: &User{Role: "rh"},
			path: VerAtestadosPath,
			want: true,
		},
		{
			name: "role comparison trims whitespace",
			user: &User{Role: "  Admin  "},
			path: VerAtestadosPath,
			want: true,
		},
		{
			name: "whitespace-only role is no role",
			user: &User{Role: "   "},
			path: VerAtestadosPath,
			want: false,
		},
		{
			name: "copy hub accepts marketing lead",
			user: &User{Role: "LIDERMARKETING"},
			path: CopyHubPath,
			want: true,
		},
		{
			name: "shopping list is admin only",
			user: &User{Role: "RH"},
			path: ComprasPath,
			want: false,
		},
		{
			name: "unknown path requires a session",
			user: nil,
			path: "/teste",
			want: false,
		},
		{
			name: "unknown path allows any signed-in user",
			user: &User{Role: ""},
			path: "/teste",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.user, tt.path); got != tt.want {
				t.Errorf("CanAccess(%v, %q) = %v, want %v", tt.user, tt.path, got, tt.want)
			}
		})
	}
}

func TestCanAccessPrefixMatch(t *testing.T) {
	tests := []struct {
		name string
		user *User
		path string
		want bool
	}{
		{
			name: "subpath inherits parent rule",
			user: &User{Role: "RH"},
			path: VerAtestadosPath + "/42",
			want: true,
		},
		{
			name: "subpath inherits parent restriction",
			user: &User{Role: "MARKETING"},
			path: VerAtestadosPath + "/42",
			want: false,
		},
		{
			name: "trailing slash is ignored",
			user: &User{Role: "RH"},
			path: VerAtestadosPath + "/",
			want: true,
		},
		{
			name: "missing leading slash is tolerated",
			user: &User{Role: "RH"},
			path: "ver-atestados",
			want: true,
		},
		{
			name: "prefix without separator does not match",
			user: nil,
			path: "/loginx",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.user, tt.path); got != tt.want {
				t.Errorf("CanAccess(%v, %q) = %v, want %v", tt.user, tt.path, got, tt.want)
			}
		})
	}
}
