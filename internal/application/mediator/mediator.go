package mediator

import (
	"context"
	"fmt"
)

// Request represents a command or query
type Request interface{}

// Response represents the result of handling a request
type Response interface{}

// RequestHandler handles a specific request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc is a function that handles a request
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware wraps handler execution with cross-cutting concerns,
// e.g. logging or metrics.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// Mediator dispatches requests to their registered handler by request
// type name, threading every call through the middleware chain.
type Mediator struct {
	handlers    map[string]RequestHandler
	middlewares []Middleware
}

// New creates an empty mediator
func New(middlewares ...Middleware) *Mediator {
	return &Mediator{
		handlers:    make(map[string]RequestHandler),
		middlewares: middlewares,
	}
}

// Register binds a handler to requests of the given type
func (m *Mediator) Register(request Request, handler RequestHandler) {
	m.handlers[typeName(request)] = handler
}

// Send dispatches a request through the middleware chain to its handler
func (m *Mediator) Send(ctx context.Context, request Request) (Response, error) {
	handler, ok := m.handlers[typeName(request)]
	if !ok {
		return nil, fmt.Errorf("no handler registered for %s", typeName(request))
	}

	invoke := handler.Handle
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		mw := m.middlewares[i]
		next := invoke
		invoke = func(ctx context.Context, request Request) (Response, error) {
			return mw(ctx, request, next)
		}
	}
	return invoke(ctx, request)
}

func typeName(request Request) string {
	return fmt.Sprintf("%T", request)
}
