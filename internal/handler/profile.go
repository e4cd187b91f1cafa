package handler

import (
	"errors"
	"net/http"

	"summerhome/internal/model"
	"summerhome/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile edit requests
type ProfileHandler struct {
	authService *service.AuthService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req model.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), req.Email, req.Name, req.Password, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile update failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		User:    user,
		Message: "Profile updated successfully",
	})
}
