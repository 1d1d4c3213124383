// Profile HTTP handlers.
//
// This file exposes the "me" endpoints, all requiring authentication:
//   - GET   /me             (profile)
//   - PATCH /me             (partial profile update)
//   - GET   /me/questions   (questions I asked)
//   - GET   /me/answers     (answers I wrote)
//   - GET   /me/favorites   (answers I bookmarked)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codelamp/go-forum-backend/internal/http/middleware"
	"github.com/codelamp/go-forum-backend/internal/repo"
)

//
// DTOs
//

// ProfileUpdateRequest is the JSON payload for PATCH /me. Absent fields are
// left untouched; an explicit empty string clears the field where allowed.
type ProfileUpdateRequest struct {
	// DisplayName replaces the public name when present; must not be blank.
	DisplayName *string `json:"display_name,omitempty" example:"Jane Doe"`
	// Bio replaces the profile text when present; empty clears it.
	Bio *string `json:"bio,omitempty" example:"Gopher since 1.4"`
}

//
// Handlers
//

// Profile godoc
// @ID          profile
// @Summary     Fetch my profile
// @Tags        Profile
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /me [get]
func (h *Handlers) Profile(c *gin.Context) {
	user, err := h.userSvc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update my profile
// @Description Applies a partial update. Fields absent from the payload are left unchanged.
// @Tags        Profile
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.ProfileUpdateRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /me [patch]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed profile payload")
		return
	}

	upd := repo.ProfileUpdate{DisplayName: req.DisplayName, Bio: req.Bio}
	user, err := h.userSvc.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), upd)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, user)
}

// MyQuestions godoc
// @ID          myQuestions
// @Summary     List my questions
// @Tags        Profile
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {array}   domain.Question
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /me/questions [get]
func (h *Handlers) MyQuestions(c *gin.Context) {
	questions, err := h.questionSvc.ListByAuthor(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, questions)
}

// MyAnswers godoc
// @ID          myAnswers
// @Summary     List my answers
// @Tags        Profile
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {array}   domain.Answer
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /me/answers [get]
func (h *Handlers) MyAnswers(c *gin.Context) {
	answers, err := h.answerSvc.ListByAuthor(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, answers)
}

// MyFavorites godoc
// @ID          myFavorites
// @Summary     List my favorited answers
// @Tags        Profile
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {array}   domain.Answer
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /me/favorites [get]
func (h *Handlers) MyFavorites(c *gin.Context) {
	answers, err := h.answerSvc.ListFavorites(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, answers)
}
