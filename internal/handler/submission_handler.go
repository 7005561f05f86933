package handler

import (
	"errors"
	"io"
	"net/http"

	"site_backend/internal/model"
	"site_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves the public contact form and its admin views
type SubmissionHandler struct {
	service service.SubmissionService
}

func NewSubmissionHandler(s service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: s}
}

// Create stores whatever the contact form sent. Every field is optional, so
// an empty body is an empty submission; only malformed JSON is rejected.
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req model.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondMessage(c, http.StatusBadRequest, "Invalid submission")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		respondError(c, http.StatusInternalServerError, "Error saving submission", err)
		return
	}
	respondMessage(c, http.StatusCreated, "Submission saved successfully")
}

func (h *SubmissionHandler) List(c *gin.Context) {
	submissions, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching submissions", err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "Error deleting submission", err)
		return
	}
	logAdminAction(c, "delete_submission", c.Param("id"))
	respondMessage(c, http.StatusOK, "Submission deleted")
}
