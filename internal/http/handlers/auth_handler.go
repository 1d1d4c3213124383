// Account HTTP handlers.
//
// This file exposes the authentication endpoints:
//   - POST /auth/signup   (register)
//   - POST /auth/login    (authenticate)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

//
// DTOs
//

// SignupRequest is the JSON payload for registering an account.
type SignupRequest struct {
	// Email is the unique login identifier.
	Email string `json:"email" binding:"required" example:"jane.doe@example.com"`
	// Password is the plaintext password; stored only as a bcrypt hash.
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct-horse-battery"`
	// DisplayName is optional; a default is derived from the email.
	DisplayName string `json:"display_name" example:"Jane Doe"`
}

// LoginRequest is the JSON payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane.doe@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

// AuthResponse carries the account and its signed access token.
type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

//
// Handlers
//

// Signup godoc
// @ID          signup
// @Summary     Register a new account
// @Description Creates an account and returns it together with an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SignupRequest  true  "Signup payload"
//
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/signup [post]
func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password (8-72 chars) required")
		return
	}

	creds, err := h.userSvc.Signup(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, AuthResponse{User: creds.User, Token: creds.Token})
}

// Login godoc
// @ID          login
// @Summary     Authenticate
// @Description Verifies credentials and returns the account with a fresh access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password required")
		return
	}

	creds, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, AuthResponse{User: creds.User, Token: creds.Token})
}
