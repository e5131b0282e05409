package core

import (
	"strings"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

const (
	// CustomIDSeparator is the character used to separate parts
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100
)

// CustomID is the routing view of a component custom ID:
// domain:action[:target[:args...]]
type CustomID struct {
	// Domain picks the router (e.g. "roll")
	Domain string

	// Action is the specific action (e.g. "reroll")
	Action string

	// Target is the first qualifier after the action
	Target string

	// Args are the remaining parts in order
	Args []string
}

// NewCustomID creates a new CustomID
func NewCustomID(domain, action string) *CustomID {
	return &CustomID{
		Domain: domain,
		Action: action,
	}
}

// WithTarget sets the target
func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

// WithArgs appends arguments
func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Encode joins the parts. Parts may not contain the separator and the
// result must fit in Discord's limit.
func (c *CustomID) Encode() (string, error) {
	if c.Domain == "" || c.Action == "" {
		return "", boterr.InvalidArgument("custom ID needs a domain and an action")
	}

	parts := []string{c.Domain, c.Action}
	if c.Target != "" {
		parts = append(parts, c.Target)
	} else if len(c.Args) > 0 {
		return "", boterr.InvalidArgument("custom ID args need a target")
	}
	parts = append(parts, c.Args...)

	for _, p := range parts {
		if p == "" || strings.Contains(p, CustomIDSeparator) {
			return "", boterr.InvalidArgumentf("invalid custom ID part %q", p)
		}
	}

	result := strings.Join(parts, CustomIDSeparator)
	if len(result) > MaxCustomIDLength {
		return "", boterr.InvalidArgumentf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength)
	}

	return result, nil
}

// ParseCustomID splits a custom ID for routing. It only checks the
// domain:action shape; handlers validate the rest.
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, boterr.InvalidArgument("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, boterr.InvalidArgument("invalid custom ID format: expected at least domain:action")
	}

	result := NewCustomID(parts[0], parts[1])
	if len(parts) > 2 {
		result.Target = parts[2]
		result.Args = append(result.Args, parts[3:]...)
	}

	return result, nil
}

// CustomIDBuilder builds custom IDs for one domain
type CustomIDBuilder struct {
	domain string
}

// NewCustomIDBuilder creates a new builder for a domain
func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

// Button creates a button custom ID
func (b *CustomIDBuilder) Button(action, target string, args ...string) (string, error) {
	return NewCustomID(b.domain, action).
		WithTarget(target).
		WithArgs(args...).
		Encode()
}
