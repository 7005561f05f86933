package handler

import (
	"errors"
	"net/http"

	"site_backend/internal/site"

	"github.com/gin-gonic/gin"
)

// SiteHandler is the catch-all for requests no API route matched
type SiteHandler struct {
	resolver *site.Resolver
}

func NewSiteHandler(r *site.Resolver) *SiteHandler {
	return &SiteHandler{resolver: r}
}

func (h *SiteHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		respondMessage(c, http.StatusNotFound, "Not found")
		return
	}

	file, err := h.resolver.Resolve(c.Request.URL.Path)
	if err != nil {
		if errors.Is(err, site.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error serving page", err)
		return
	}
	c.File(file)
}
