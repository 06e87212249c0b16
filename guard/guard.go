package guard

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/MrEthical07/goEdu/session"
)

const (
	LoginPath            = "/login"
	RegisterPath         = "/register"
	TeacherDashboardPath = "/teacher"
	StudentDashboardPath = "/student"
)

// Route describes the access rules of a path and everything below it.
type Route struct {
	Path         string
	RequiresAuth bool
	// Role restricts the route to one role when non-empty.
	Role session.Role
	// GuestOnly routes are meant for signed-out users.
	GuestOnly bool
	// Redirect sends every visitor elsewhere, e.g. "/" to the login page.
	Redirect string
}

// Decision is the outcome of Decide.
type Decision struct {
	Allow    bool
	Redirect string
}

// DefaultRoutes returns the route table of the web front-end.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Redirect: LoginPath},
		{Path: LoginPath, GuestOnly: true},
		{Path: RegisterPath, GuestOnly: true},
		{Path: TeacherDashboardPath, RequiresAuth: true, Role: session.RoleTeacher},
		{Path: StudentDashboardPath, RequiresAuth: true, Role: session.RoleStudent},
	}
}

// Dashboard returns the landing path of role. Anything other than a teacher lands
// on the student dashboard.
func Dashboard(role session.Role) string {
	if role == session.RoleTeacher {
		return TeacherDashboardPath
	}
	return StudentDashboardPath
}

// Decide applies the routing rules to fullPath, the requested path including any
// query string.
func Decide(sess session.Session, route Route, fullPath string, now time.Time) Decision {
	if route.Redirect != "" {
		return Decision{Redirect: route.Redirect}
	}

	_, role, ok := sess.Identity()
	active := ok && !sess.Expired(now)

	if route.RequiresAuth && !active {
		q := url.Values{"redirect": {fullPath}}
		return Decision{Redirect: LoginPath + "?" + q.Encode()}
	}
	if route.Role != "" && role != route.Role {
		return Decision{Redirect: Dashboard(role)}
	}
	if route.GuestOnly && active {
		return Decision{Redirect: Dashboard(role)}
	}
	return Decision{Allow: true}
}

// Match returns the route whose Path is the longest prefix of path on a segment
// boundary. "/" matches only itself.
func Match(routes []Route, path string) (Route, bool) {
	sorted := make([]Route, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Path) > len(sorted[j].Path)
	})

	for _, r := range sorted {
		if r.Path == "/" {
			if path == "/" || path == "" {
				return r, true
			}
			continue
		}
		if path == r.Path || strings.HasPrefix(path, strings.TrimRight(r.Path, "/")+"/") {
			return r, true
		}
	}
	return Route{}, false
}
