package views

import (
	"sync"

	"github.com/dmitrijs2005/gophdiary/internal/client/session"
)

// Route is a page path.
type Route string

const (
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteSignup    Route = "/signup"
	RouteDashboard Route = "/dashboard"
	RouteProfile   Route = "/profile"
)

// Router maps requested routes to the page that may be shown for the
// current session state, and follows the session when it changes.
type Router struct {
	mu      sync.Mutex
	session *session.Session
	current Route
	unsub   func()
}

// NewRouter starts on the login page and re-evaluates the current route on
// every session change.
func NewRouter(s *session.Session) *Router {
	r := &Router{session: s, current: RouteLogin}
	r.unsub = s.Subscribe(func(session.State) {
		r.mu.Lock()
		r.current = r.resolve(r.current)
		r.mu.Unlock()
	})
	return r
}

// Close stops following the session.
func (r *Router) Close() { r.unsub() }

// Resolve applies the guards to path without navigating.
func (r *Router) Resolve(path Route) Route {
	return r.resolve(path)
}

func (r *Router) resolve(path Route) Route {
	authed := r.session.State() == session.Authenticated
	switch path {
	case RouteLogin, RouteSignup:
		if authed {
			return RouteDashboard
		}
		return path
	case RouteDashboard, RouteProfile:
		if !authed {
			return RouteLogin
		}
		return path
	default:
		if !authed {
			return RouteLogin
		}
		return RouteDashboard
	}
}

// Navigate moves to path, or to where the guards redirect it, and returns
// the route actually shown.
func (r *Router) Navigate(path Route) Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = r.resolve(path)
	return r.current
}

// Current returns the route being shown.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
