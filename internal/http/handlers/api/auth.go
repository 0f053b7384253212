package api

import (
	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest creates a member account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates a member account and signs them in.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "You must enter an email address and password.")
		return
	}
	user, token, expiresAt, err := h.AuthService.Register(service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondWithMappedError(c, err, authErrorRules)
		return
	}
	response.OK(c, gin.H{
		"success":   true,
		"token":     token,
		"expiresAt": expiresAt,
		"user":      user,
	})
}

// LoginRequest signs a member in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "You must enter an email address and password.")
		return
	}
	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules)
		return
	}
	response.OK(c, gin.H{
		"success":   true,
		"token":     token,
		"expiresAt": expiresAt,
		"user":      user,
	})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserRepo.GetByID(uid)
	if err != nil {
		response.InternalError(c)
		return
	}
	if user == nil {
		response.NotFound(c, "No user found.")
		return
	}
	response.OK(c, gin.H{"user": user})
}
