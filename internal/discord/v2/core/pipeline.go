package core

import (
	"context"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	newResponder ResponderFactory

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		newResponder: NewDiscordResponder,
	}
}

// Register adds handlers to the pipeline. Middleware added with Use before
// this call wraps them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		var chain Handler = h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			chain = p.middleware[i](chain)
		}
		p.handlers = append(p.handlers, &routedHandler{route: h, chain: chain})
	}
}

// routedHandler keeps the registered handler's routing decision while the
// interaction itself runs through the middleware chain
type routedHandler struct {
	route Handler
	chain Handler
}

func (h *routedHandler) CanHandle(ctx *InteractionContext) bool {
	return h.route.CanHandle(ctx)
}

func (h *routedHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return h.chain.Handle(ctx)
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// SetResponderFactory replaces how responders are created, mainly for tests
func (p *Pipeline) SetResponderFactory(factory ResponderFactory) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.newResponder = factory
}

// Execute runs the first registered handler that can handle the interaction.
// Each call is independent; nothing about one interaction is kept for the next.
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	interactionCtx := NewInteractionContext(ctx, s, i)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	responder := p.newResponder(s, i)
	p.mu.RUnlock()

	interactionCtx.WithValue(responderKey, responder)

	handled := false
	for _, handler := range handlers {
		if !handler.CanHandle(interactionCtx) {
			continue
		}

		result, err := handler.Handle(interactionCtx)
		if err != nil {
			result = errorHandler(interactionCtx, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				log.Printf("[Pipeline] Failed to deliver response for %s: %v", describe(interactionCtx), err)
				return boterr.Delivery(err, "failed to send response")
			}
		}

		handled = true
		break
	}

	if !handled && !responder.HasResponded() {
		log.Printf("[Pipeline] No handler for %s", describe(interactionCtx))
		result := &HandlerResult{
			Response: NewEphemeralResponse("I don't know how to handle that command."),
		}
		if err := sendResponse(responder, result); err != nil {
			return boterr.Delivery(err, "failed to send response")
		}
	}

	return nil
}

// sendResponse sends a response using the responder
func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}
	return responder.Respond(result.Response)
}

// Clear removes all handlers from the pipeline
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.handlers = make([]Handler, 0)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	handlerErr := FromError(err)
	if handlerErr.ShowToUser {
		return &HandlerResult{Response: NewEphemeralResponse(handlerErr.UserMessage)}
	}
	return &HandlerResult{
		Response: NewEphemeralResponse("An error occurred while processing your request."),
	}
}

func describe(ctx *InteractionContext) string {
	if ctx.IsComponent() {
		return "component " + ctx.GetCustomID()
	}
	if name := ctx.GetCommandName(); name != "" {
		return "command /" + name
	}
	return "interaction"
}
