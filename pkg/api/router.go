// Package api maps HTTP routes onto resource lookups and inserts.
package api

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"travelrest/pkg/logger"
	"travelrest/pkg/metrics"
)

// Route is one entry of the route table.
type Route struct {
	Name    string
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// URIBuilder computes the canonical URI of a named route.
type URIBuilder interface {
	URIFor(name string, pairs ...string) (string, error)
}

// Router dispatches requests through the registered route table.
type Router struct {
	mux *mux.Router
}

// NewRouter returns an empty Router. m may be nil.
func NewRouter(log *logger.Logger, tracer trace.Tracer, m *metrics.Metrics) *Router {
	chain := []mux.MiddlewareFunc{traceMiddleware(tracer), logMiddleware(log), recoverMiddleware(log)}
	if m != nil {
		chain = append([]mux.MiddlewareFunc{m.Middleware}, chain...)
	}

	r := mux.NewRouter()
	r.Use(chain...)
	// mux skips middleware when no route matches.
	r.NotFoundHandler = wrap(http.NotFoundHandler(), chain)
	r.MethodNotAllowedHandler = wrap(http.HandlerFunc(methodNotAllowed), chain)
	return &Router{mux: r}
}

func wrap(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// Register adds routes in order; earlier routes win when patterns overlap.
func (rt *Router) Register(routes ...Route) {
	for _, route := range routes {
		rt.mux.HandleFunc(route.Pattern, route.Handler).Methods(route.Method).Name(route.Name)
	}
}

// Mount serves every path below prefix with h.
func (rt *Router) Mount(prefix string, h http.Handler) {
	rt.mux.PathPrefix(prefix).Handler(h)
}

// URIFor re-runs the binding of the named route with the given key/value pairs.
// Paths the router would redirect away from, such as "/hotels/..", are errors.
func (rt *Router) URIFor(name string, pairs ...string) (string, error) {
	route := rt.mux.Get(name)
	if route == nil {
		return "", fmt.Errorf("no route named %q", name)
	}
	u, err := route.URLPath(pairs...)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", name, err)
	}
	if path.Clean(u.Path) != u.Path {
		return "", fmt.Errorf("build %s: %q is not a canonical path", name, u.Path)
	}
	return u.String(), nil
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Status: UP")
}
