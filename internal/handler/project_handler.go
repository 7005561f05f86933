package handler

import (
	"errors"
	"net/http"

	"site_backend/internal/model"
	"site_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const ProjectImageField = "image"

// ProjectHandler serves the portfolio
type ProjectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: s}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create expects a multipart form with title, description and an image file
func (h *ProjectHandler) Create(c *gin.Context) {
	file, err := c.FormFile(ProjectImageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondMessage(c, http.StatusRequestEntityTooLarge, "Image is too large")
			return
		}
		respondMessage(c, http.StatusBadRequest, "Image is required")
		return
	}

	var req model.CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Title is required")
		return
	}

	project, err := h.service.Create(c.Request.Context(), req, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageRequired):
			respondMessage(c, http.StatusBadRequest, "Image is required")
		case errors.Is(err, service.ErrInvalidImage), errors.Is(err, service.ErrImageTooLarge):
			respondMessage(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Error adding project", err)
		}
		return
	}

	logAdminAction(c, "create_project", project.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Project added successfully", "project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "Error deleting project", err)
		return
	}
	logAdminAction(c, "delete_project", c.Param("id"))
	respondMessage(c, http.StatusOK, "Project deleted")
}
