package handler

import (
	"site_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError logs err against the request and sends only message to the client
func respondError(c *gin.Context, status int, message string, err error) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("status", status).Msg(message)
	c.JSON(status, gin.H{"message": message})
}

// logAdminAction records who changed what through an authenticated route
func logAdminAction(c *gin.Context, action, target string) {
	actor, _ := middleware.UserIDFromContext(c.Request.Context())
	zerolog.Ctx(c.Request.Context()).Info().
		Str("actor", actor).
		Str("action", action).
		Str("target", target).
		Msg("admin action")
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
