package handler

import (
	"errors"
	"net/http"

	"site_backend/internal/model"
	"site_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PackageHandler serves the pricing catalog
type PackageHandler struct {
	service service.PackageService
}

func NewPackageHandler(s service.PackageService) *PackageHandler {
	return &PackageHandler{service: s}
}

func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching packages", err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

func (h *PackageHandler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrPackagesAlreadySeeded) {
			respondMessage(c, http.StatusBadRequest, "Packages already seeded")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error seeding packages", err)
		return
	}
	respondMessage(c, http.StatusCreated, "Packages seeded")
}

// Update applies a partial update and returns the whole package
func (h *PackageHandler) Update(c *gin.Context) {
	var req model.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			respondMessage(c, http.StatusNotFound, "Package not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating package", err)
		return
	}
	logAdminAction(c, "update_package", pkg.ID)
	c.JSON(http.StatusOK, pkg)
}
