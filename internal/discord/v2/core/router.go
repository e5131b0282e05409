package core

import (
	"fmt"
	"strings"
)

// Router manages handlers for one domain. The domain is both the slash
// command name and the first part of the custom IDs it owns.
type Router struct {
	domain string

	// Handlers by pattern: cmd:<domain>, cmd:<domain>:<sub>, component:<action>
	handlers map[string]Handler

	// Middleware specific to this router
	middleware []Middleware

	customIDBuilder *CustomIDBuilder

	// Parent pipeline to register with
	pipeline *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:          domain,
		handlers:        make(map[string]Handler),
		middleware:      make([]Middleware, 0),
		customIDBuilder: NewCustomIDBuilder(domain),
		pipeline:        pipeline,
	}
}

// Use adds middleware to this router. Only handlers registered afterwards are wrapped.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a pattern; a trailing ":*" matches any suffix
func (r *Router) Handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[pattern] = wrapped
	return r
}

// HandleFunc registers a handler function
func (r *Router) HandleFunc(pattern string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(pattern, HandlerFunc(fn))
}

// Command registers the handler for the router's slash command
func (r *Router) Command(handler Handler) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s", r.domain), handler)
}

// CommandFunc registers a slash command handler function
func (r *Router) CommandFunc(fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Command(HandlerFunc(fn))
}

// Subcommand registers a subcommand handler
func (r *Router) Subcommand(sub string, handler Handler) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s:%s", r.domain, sub), handler)
}

// Component registers one handler for one or more component actions
func (r *Router) Component(handler Handler, actions ...string) *Router {
	for _, action := range actions {
		r.Handle(fmt.Sprintf("component:%s", action), handler)
	}
	return r
}

// ComponentFunc registers a component handler function
func (r *Router) ComponentFunc(fn func(*InteractionContext) (*HandlerResult, error), actions ...string) *Router {
	return r.Component(HandlerFunc(fn), actions...)
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	handlers := make(map[string]Handler, len(r.handlers))
	for k, v := range r.handlers {
		handlers[k] = v
	}
	return &routerHandler{
		domain:   r.domain,
		handlers: handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// GetCustomIDBuilder returns the CustomID builder for this router
func (r *Router) GetCustomIDBuilder() *CustomIDBuilder {
	return r.customIDBuilder
}

// routerHandler implements Handler for a router
type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.resolve(ctx) != nil
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.resolve(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

// resolve finds the handler for the interaction: exact pattern first,
// then the longest wildcard prefix.
func (h *routerHandler) resolve(ctx *InteractionContext) Handler {
	pattern := h.extractPattern(ctx)
	if pattern == "" {
		return nil
	}

	if handler, ok := h.handlers[pattern]; ok {
		return handler
	}

	parts := strings.Split(pattern, ":")
	for i := len(parts); i > 0; i-- {
		if handler, ok := h.handlers[strings.Join(parts[:i], ":")+":*"]; ok {
			return handler
		}
	}
	return nil
}

// extractPattern extracts the routing pattern from the interaction
func (h *routerHandler) extractPattern(ctx *InteractionContext) string {
	if ctx.IsCommand() {
		if ctx.GetCommandName() != h.domain {
			return ""
		}
		if sub := ctx.GetSubcommand(); sub != "" {
			return fmt.Sprintf("cmd:%s:%s", h.domain, sub)
		}
		return fmt.Sprintf("cmd:%s", h.domain)
	}

	if ctx.IsComponent() {
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != h.domain {
			return ""
		}
		return fmt.Sprintf("component:%s", customID.Action)
	}

	return ""
}
