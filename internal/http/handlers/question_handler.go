// Question HTTP handlers.
//
// This file exposes REST endpoints for the question catalog:
//   - GET  /questions       (front page, ?sort=newest|views|answers)
//   - POST /questions       (create, authenticated)
//   - GET  /questions/{id}  (detail, counts a view)
//   - GET  /search?q=...    (naive substring search)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codelamp/go-forum-backend/internal/repo"
	"github.com/codelamp/go-forum-backend/internal/utils"
)

// maxSearchResults caps how many hits a single search request may return.
const maxSearchResults = 50

//
// DTOs
//

// CreateQuestionRequest is the JSON payload for posting a question.
type CreateQuestionRequest struct {
	// Title is the headline (1-255 chars).
	Title string `json:"title" binding:"required,min=1,max=255" example:"Goroutine leak in worker pool"`
	// Description is the problem statement.
	Description string `json:"description" binding:"required" example:"Workers never exit after the channel closes..."`
	// Code optionally carries a code snippet.
	Code string `json:"code" example:"for w := range jobs { ... }"`
	// Tags are free-form labels; normalized and capped server-side.
	Tags []string `json:"tags" example:"go,concurrency"`
}

//
// Handlers
//

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List questions (front page)
// @Description Returns the newest questions, optionally re-sorted by view or answer counts.
// @Tags        Questions
// @Produce     json
//
// @Param       sort  query  string  false  "Sort key"  Enums(newest, views, answers)  default(newest)
//
// @Success     200  {array}   domain.Question
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	sortKey := c.DefaultQuery("sort", repo.SortNewest)

	questions, err := h.questionSvc.List(c.Request.Context(), sortKey)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, questions)
}

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Post a new question
// @Description Stores a question authored by the current user. New questions start open with zero counters.
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.CreateQuestionRequest  true  "Question payload"
//
// @Success     201  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title (1-255 chars) and description required")
		return
	}

	q, err := h.questionSvc.Create(c.Request.Context(), currentUser(c), req.Title, req.Description, req.Code, req.Tags)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, q)
}

// GetQuestion godoc
// @ID          getQuestion
// @Summary     Fetch one question
// @Description Returns a question by ID. Every successful fetch increments the view counter.
// @Tags        Questions
// @Produce     json
//
// @Param       id  path  string  true  "Question ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions/{id} [get]
func (h *Handlers) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}

	q, err := h.questionSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// SearchQuestions godoc
// @ID          searchQuestions
// @Summary     Search questions
// @Description Case-insensitive substring match over titles, descriptions, and tags. A blank query matches nothing.
// @Tags        Questions
// @Produce     json
//
// @Param       q      query  string  true   "Search term"
// @Param       limit  query  int     false  "Maximum hits (1-50)"  default(50)
//
// @Success     200  {array}   domain.Question
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /search [get]
func (h *Handlers) SearchQuestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	limit := utils.ClampLimit(utils.AtoiDefault(c.Query("limit"), 0), maxSearchResults)

	questions, err := h.questionSvc.Search(c.Request.Context(), query)
	if err != nil {
		failService(c, err)
		return
	}
	if len(questions) > limit {
		questions = questions[:limit]
	}
	ok(c, http.StatusOK, questions)
}
