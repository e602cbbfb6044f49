// Package middleware provides the HTTP middleware stack for the host
// application.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System manages an ordered middleware stack.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	middleware []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &stack{}
}

// Use appends middleware to the stack. Middleware added first runs outermost.
func (s *stack) Use(mw Middleware) {
	s.middleware = append(s.middleware, mw)
}

// Apply wraps handler with the registered middleware stack.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.middleware) - 1; i >= 0; i-- {
		handler = s.middleware[i](handler)
	}
	return handler
}
