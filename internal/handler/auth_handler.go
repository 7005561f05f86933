package handler

import (
	"errors"
	"net/http"

	"site_backend/internal/model"
	"site_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"token": nil, "message": "Invalid password"})
		default:
			respondError(c, http.StatusInternalServerError, "Error logging in", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"auth": true, "token": token})
}

// Register creates another admin account; the route requires a valid token
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			respondMessage(c, http.StatusBadRequest, "User already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	logAdminAction(c, "register_user", user.ID)
	respondMessage(c, http.StatusCreated, "Admin user created successfully")
}

// SeedAdmin bootstraps the first admin account. It only succeeds once.
func (h *AuthHandler) SeedAdmin(c *gin.Context) {
	user, err := h.service.SeedAdmin(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrAdminAlreadyExists) {
			respondMessage(c, http.StatusBadRequest, "Admin already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating admin", err)
		return
	}

	respondMessage(c, http.StatusCreated,
		"Admin user created. Username: "+user.Username+", Password: "+model.DefaultAdminPassword)
}
