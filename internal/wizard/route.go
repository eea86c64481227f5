package wizard

import "sync"

// Route names a screen of the application.
type Route string

// Application routes.
const (
	RouteWizard   Route = "/"
	RouteThankYou Route = "/thankyou"
)

// Navigator switches the active route.
type Navigator interface {
	Navigate(to Route)
}

// Router tracks the active route and its history.
type Router struct {
	mu        sync.Mutex
	history   []Route
	listeners []func(Route)
}

// NewRouter returns a router positioned at RouteWizard.
func NewRouter() *Router {
	return &Router{history: []Route{RouteWizard}}
}

// Navigate implements Navigator.
func (r *Router) Navigate(to Route) {
	r.mu.Lock()
	r.history = append(r.history, to)
	listeners := append([]func(Route){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(to)
	}
}

// Current returns the active route.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[len(r.history)-1]
}

// History returns every route visited, oldest first.
func (r *Router) History() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Route(nil), r.history...)
}

// OnNavigate registers fn to run after every navigation.
func (r *Router) OnNavigate(fn func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}
