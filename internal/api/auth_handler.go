package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/service"
)

// AuthHandler exposes the demo login.
type AuthHandler struct {
	store *service.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *service.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// --- Request/Response Structs ---

// LoginRequest is accepted as-is: the email is not validated.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// --- Handler Methods ---

// Login godoc
// @Summary Log in to the dashboard
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} gin.H "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "An unexpected error occurred during login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: result.Token, User: result.User})
}

// Logout godoc
// @Summary End the dashboard session
// @Tags Auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current session user
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} gin.H "Not logged in"
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read session user")
		return
	}
	c.JSON(http.StatusOK, user)
}
