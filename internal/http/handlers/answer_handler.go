// Answer HTTP handlers.
//
// This file exposes REST endpoints for answers and engagement:
//   - GET  /questions/{id}/answers   (thread, best-lamped first)
//   - POST /questions/{id}/answers   (post, authenticated, idempotent)
//   - POST /answers/{id}/lamp        (toggle upvote)
//   - POST /answers/{id}/favorite    (toggle bookmark)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codelamp/go-forum-backend/internal/http/middleware"
)

//
// DTOs
//

// PostAnswerRequest is the JSON payload for answering a question.
type PostAnswerRequest struct {
	// Content is the answer body.
	Content string `json:"content" binding:"required" example:"Close the jobs channel once all producers are done."`
	// Code optionally carries a code snippet.
	Code string `json:"code" example:"close(jobs)"`
}

// ToggleResponse reports the resulting state of a toggle endpoint.
type ToggleResponse struct {
	// Active is true when the toggle ended in the "on" state.
	Active bool `json:"active" example:"true"`
	// LampCount carries the answer's new lamp total for lamp toggles.
	LampCount *int64 `json:"lamp_count,omitempty" example:"4"`
}

//
// Handlers
//

// ListAnswers godoc
// @ID          listAnswers
// @Summary     List a question's answers
// @Description Returns the answers for a question, highest lamp count first, then newest.
// @Tags        Answers
// @Produce     json
//
// @Param       id  path  string  true  "Question ID (UUID)"  format(uuid)
//
// @Success     200  {array}   domain.Answer
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions/{id}/answers [get]
func (h *Handlers) ListAnswers(c *gin.Context) {
	questionID := c.Param("id")
	if _, err := uuid.Parse(questionID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}

	answers, err := h.answerSvc.ListForQuestion(c.Request.Context(), questionID)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, answers)
}

// PostAnswer godoc
// @ID          postAnswer
// @Summary     Answer a question
// @Description Stores an answer and bumps the question's answer counter in the same transaction. Retries carrying the same Idempotency-Key replay the original answer instead of inserting a duplicate.
// @Tags        Answers
// @Accept      json
// @Produce     json
//
// @Param       Authorization    header  string  true   "Bearer access token"
// @Param       Idempotency-Key  header  string  false  "Client-chosen key for safe retries"
// @Param       id               path    string  true   "Question ID (UUID)"  format(uuid)
// @Param       body             body    handlers.PostAnswerRequest  true  "Answer payload"
//
// @Success     200  {object}  domain.Answer  "Replayed from an earlier request"
// @Success     201  {object}  domain.Answer
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions/{id}/answers [post]
func (h *Handlers) PostAnswer(c *gin.Context) {
	questionID := c.Param("id")
	if _, err := uuid.Parse(questionID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}

	var req PostAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content required")
		return
	}

	idemKey, _ := middleware.GetIdempotencyKey(c)
	answer, replayed, err := h.answerSvc.Post(c.Request.Context(), currentUser(c), questionID, req.Content, req.Code, idemKey)
	if err != nil {
		failService(c, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	ok(c, status, answer)
}

// ToggleLamp godoc
// @ID          toggleLamp
// @Summary     Toggle a lamp on an answer
// @Description Flips the caller's lamp (upvote) on an answer. The stored count is recomputed from the lamp set inside a transaction, so repeated or concurrent toggles cannot drift.
// @Tags        Answers
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       id             path    string  true  "Answer ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.ToggleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Answer not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answers/{id}/lamp [post]
func (h *Handlers) ToggleLamp(c *gin.Context) {
	answerID := c.Param("id")
	if _, err := uuid.Parse(answerID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer id must be a UUID")
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	answer, lamped, err := h.answerSvc.ToggleLamp(c.Request.Context(), userID, answerID)
	if err != nil {
		failService(c, err)
		return
	}
	count := answer.LampCount
	ok(c, http.StatusOK, ToggleResponse{Active: lamped, LampCount: &count})
}

// ToggleFavorite godoc
// @ID          toggleFavorite
// @Summary     Toggle a favorite on an answer
// @Description Flips the caller's private bookmark on an answer.
// @Tags        Answers
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       id             path    string  true  "Answer ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.ToggleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Answer not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answers/{id}/favorite [post]
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	answerID := c.Param("id")
	if _, err := uuid.Parse(answerID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer id must be a UUID")
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	favorited, err := h.answerSvc.ToggleFavorite(c.Request.Context(), userID, answerID)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ToggleResponse{Active: favorited})
}
