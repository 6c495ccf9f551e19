package access

import (
	"strings"

	"github.com/sevenplus-app/sevenplus-cli/internal/assert"
)

// Route paths used across the CLI. Every screen-backed command declares one
// of these and is gated through the evaluator before it runs.
const (
	LoginPath          = "/login"
	HomePath           = "/home"
	AtestadoPath       = "/AtestadoScreen"
	ComunicadosAllPath = "/comunicadosGerais"
	CopyHubPath        = "/copy-hub"
	ComprasPath        = "/ListaDeComprasScreen"
	VerAtestadosPath   = "/ver-atestados"
	FormulariosPath    = "/resultados-formularios"
	ComunicadosPath    = "/comunicados"
)

// Rule describes the access requirement for a route: open to everyone,
// any signed-in user, or a specific set of roles.
type Rule struct {
	Public bool
	Auth   bool
	Roles  []string
}

// Public allows unauthenticated access, Auth requires any session.
var (
	rulePublic = Rule{Public: true}
	ruleAuth   = Rule{Auth: true}
)

func roles(rs ...string) Rule {
	return Rule{Roles: rs}
}

// Rules is the static route access table. It is immutable at runtime;
// role comparison is case-insensitive and whitespace-tolerant.
var Rules = map[string]Rule{
	LoginPath: rulePublic,

	// any signed-in user
	HomePath:           ruleAuth,
	AtestadoPath:       ruleAuth,
	ComunicadosAllPath: ruleAuth,

	// restricted by role
	CopyHubPath:      roles("ADMIN", "MARKETING", "LIDERMARKETING"),
	ComprasPath:      roles("ADMIN"),
	VerAtestadosPath: roles("RH", "ADMIN", "LIDERRH"),
	FormulariosPath:  roles("ADMIN", "QUALIDADE"),
	ComunicadosPath:  roles("ADMIN", "RH"),
}

// The table is authored by hand; fail fast on malformed entries.
func init() {
	for key, rule := range Rules {
		assert.True(strings.HasPrefix(key, "/"), "route key must start with /")
		assert.True(!strings.HasSuffix(key, "/"), "route key must not end with /")
		if !rule.Public && !rule.Auth {
			assert.True(len(rule.Roles) > 0, "role rule must list at least one role")
		}
	}
}

// User is the minimal view of an authenticated user the evaluator needs.
// A nil *User means "not signed in".
type User struct {
	Role string
}

// normalizePath ensures a single leading slash and strips trailing slashes.
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(path, "/")
}

// matchRule finds the most specific rule covering path. A rule with key K
// covers path P when P == K or P starts with K + "/". Longest key wins.
func matchRule(path string) (Rule, bool) {
	p := normalizePath(path)
	best := ""
	for key := range Rules {
		if p == key || strings.HasPrefix(p, key+"/") {
			if len(key) > len(best) {
				best = key
			}
		}
	}
	if best == "" {
		return Rule{}, false
	}
	return Rules[best], true
}

// CanAccess reports whether user may visit path. Paths with no matching
// rule require a signed-in session (fail-closed default).
func CanAccess(user *User, path string) bool {
	rule, ok := matchRule(path)
	if !ok {
		return user != nil
	}

	if rule.Public {
		return true
	}
	if rule.Auth {
		return user != nil
	}

	// role-restricted route
	if user == nil {
		return false
	}
	userRole := strings.ToUpper(strings.TrimSpace(user.Role))
	if userRole == "" {
		return false
	}
	for _, r := range rule.Roles {
		if userRole == strings.ToUpper(strings.TrimSpace(r)) {
			return true
		}
	}
	return false
}
