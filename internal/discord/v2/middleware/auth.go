package middleware

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
)

// AuthConfig configures authorization behavior
type AuthConfig struct {
	// RequiredPermissions lists permissions the member must hold in the channel
	RequiredPermissions int64

	// AllowDirectMessages lets DMs through; a DM has no member to check
	AllowDirectMessages bool

	// UserAllowlist bypasses the permission check
	UserAllowlist []string

	// Message shown when the check fails
	Message string
}

// AuthorizationMiddleware checks the member's resolved permissions. Discord
// sends them with the interaction, so no API call is needed.
func AuthorizationMiddleware(config *AuthConfig) core.Middleware {
	message := config.Message
	if message == "" {
		message = "You don't have the required permissions to use this command."
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if contains(config.UserAllowlist, ctx.UserID) {
				return next.Handle(ctx)
			}

			if ctx.Member == nil {
				if ctx.GuildID == "" && config.AllowDirectMessages {
					return next.Handle(ctx)
				}
				return nil, core.NewForbiddenError(message)
			}

			if !hasPermissions(ctx.Member.Permissions, config.RequiredPermissions) {
				return nil, core.NewForbiddenError(message)
			}

			return next.Handle(ctx)
		})
	}
}

// PermissionRequiredMiddleware requires the member to hold permissions in the channel
func PermissionRequiredMiddleware(permissions int64) core.Middleware {
	return AuthorizationMiddleware(&AuthConfig{
		RequiredPermissions: permissions,
		AllowDirectMessages: true,
	})
}

func hasPermissions(held, required int64) bool {
	// administrator bypasses all permission checks
	if held&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return held&required == required
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
