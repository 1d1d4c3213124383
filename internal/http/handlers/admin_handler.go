// Moderation console HTTP handlers.
//
// Every endpoint here lives under /admin and is gated twice: the router
// mounts RequireAdmin on the group, and the admin service re-validates the
// actor on every call. The console offers full listings, destructive
// moderation, role and status changes, aggregate stats, a recent-activity
// feed, and a live change stream over Server-Sent Events.
package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codelamp/go-forum-backend/internal/http/middleware"
)

//
// DTOs
//

// SetRoleRequest is the JSON payload for changing a user's role.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required" example:"admin" enums:"user,admin"`
}

// SetStatusRequest is the JSON payload for changing a question's status.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"resolved" enums:"open,resolved,closed"`
}

//
// Listings
//

// AdminListUsers godoc
// @ID          adminListUsers
// @Summary     List all users
// @Tags        Admin
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {array}   domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/users [get]
func (h *Handlers) AdminListUsers(c *gin.Context) {
	users, err := h.adminSvc.ListUsers(c.Request.Context(), currentUser(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, users)
}

// AdminListQuestions godoc
// @ID          adminListQuestions
// @Summary     List all questions
// @Tags        Admin
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {array}   domain.Question
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Router      /admin/questions [get]
func (h *Handlers) AdminListQuestions(c *gin.Context) {
	questions, err := h.adminSvc.ListQuestions(c.Request.Context(), currentUser(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, questions)
}

// AdminListAnswers godoc
// @ID          adminListAnswers
// @Summary     List all answers
// @Tags        Admin
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {array}   domain.Answer
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Router      /admin/answers [get]
func (h *Handlers) AdminListAnswers(c *gin.Context) {
	answers, err := h.adminSvc.ListAnswers(c.Request.Context(), currentUser(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, answers)
}

// AdminListMessages godoc
// @ID          adminListMessages
// @Summary     List member messages
// @Tags        Admin
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {array}   domain.Message
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Router      /admin/messages [get]
func (h *Handlers) AdminListMessages(c *gin.Context) {
	messages, err := h.adminSvc.ListMessages(c.Request.Context(), currentUser(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, messages)
}

//
// Moderation
//

// AdminDeleteUser godoc
// @ID          adminDeleteUser
// @Summary     Delete a user
// @Description Removes the account. Content the user authored survives and stays attributed by stored display name. Admins cannot delete themselves.
// @Tags        Admin
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    string  true  "User ID (UUID)"  format(uuid)
// @Success     204  "Deleted"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required or self-delete"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /admin/users/{id} [delete]
func (h *Handlers) AdminDeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a UUID")
		return
	}
	if err := h.adminSvc.DeleteUser(c.Request.Context(), currentUser(c), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// AdminDeleteQuestion godoc
// @ID          adminDeleteQuestion
// @Summary     Delete a question
// @Description Removes the question together with its answers and their favorites.
// @Tags        Admin
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    string  true  "Question ID (UUID)"  format(uuid)
// @Success     204  "Deleted"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Router      /admin/questions/{id} [delete]
func (h *Handlers) AdminDeleteQuestion(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}
	if err := h.adminSvc.DeleteQuestion(c.Request.Context(), currentUser(c), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// AdminDeleteAnswer godoc
// @ID          adminDeleteAnswer
// @Summary     Delete an answer
// @Description Removes the answer and decrements its question's answer counter in the same transaction.
// @Tags        Admin
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    string  true  "Answer ID (UUID)"  format(uuid)
// @Success     204  "Deleted"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Failure     404  {object}  handlers.ErrorResponse  "Answer not found"
// @Router      /admin/answers/{id} [delete]
func (h *Handlers) AdminDeleteAnswer(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer id must be a UUID")
		return
	}
	if err := h.adminSvc.DeleteAnswer(c.Request.Context(), currentUser(c), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// AdminSetUserRole godoc
// @ID          adminSetUserRole
// @Summary     Change a user's role
// @Description Promotes or demotes an account. Admins cannot change their own role.
// @Tags        Admin
// @Accept      json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    string  true  "User ID (UUID)"  format(uuid)
// @Param       body           body    handlers.SetRoleRequest  true  "New role"
// @Success     204  "Updated"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required or self-change"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     422  {object}  handlers.ErrorResponse  "Unknown role"
// @Router      /admin/users/{id}/role [put]
func (h *Handlers) AdminSetUserRole(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a UUID")
		return
	}
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "role required")
		return
	}
	if err := h.adminSvc.SetUserRole(c.Request.Context(), currentUser(c), id, req.Role); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// AdminSetQuestionStatus godoc
// @ID          adminSetQuestionStatus
// @Summary     Change a question's status
// @Description Moves a question along open -> resolved -> closed. Reopening is not allowed.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    string  true  "Question ID (UUID)"  format(uuid)
// @Param       body           body    handlers.SetStatusRequest  true  "New status"
// @Success     200  {object}  domain.Question
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Failure     422  {object}  handlers.ErrorResponse  "Illegal status transition"
// @Router      /admin/questions/{id}/status [put]
func (h *Handlers) AdminSetQuestionStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}
	q, err := h.adminSvc.SetQuestionStatus(c.Request.Context(), currentUser(c), id, req.Status)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, q)
}

//
// Dashboard
//

// AdminStats godoc
// @ID          adminStats
// @Summary     Forum-wide counters
// @Description Returns total users, questions, answers, and messages. Served from the Redis cache when one is configured.
// @Tags        Admin
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {object}  repo.ForumStats
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Router      /admin/stats [get]
func (h *Handlers) AdminStats(c *gin.Context) {
	stats, err := h.adminSvc.ForumStats(c.Request.Context(), currentUser(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}

// AdminActivity godoc
// @ID          adminActivity
// @Summary     Recent activity feed
// @Description Returns the latest questions and answers merged into one list, newest first.
// @Tags        Admin
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {array}   services.ActivityItem
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Router      /admin/activity [get]
func (h *Handlers) AdminActivity(c *gin.Context) {
	items, err := h.adminSvc.RecentActivity(c.Request.Context(), currentUser(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// AdminEvents godoc
// @ID          adminEvents
// @Summary     Live change stream
// @Description Streams forum change events over Server-Sent Events until the client disconnects. Each event's SSE name is its kind (user, question, answer, message) and the data payload is the JSON event.
// @Tags        Admin
// @Produce     text/event-stream
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Success     200  {string}  string  "SSE stream"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin access required"
// @Router      /admin/events [get]
func (h *Handlers) AdminEvents(c *gin.Context) {
	// RequireAdmin guards the route, but a stream held across a role change
	// is cheap to reject up front too.
	if u := currentUser(c); u == nil || !u.IsAdmin() {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "admin access required")
		return
	}

	ch, cancel := h.bus.Subscribe()
	defer cancel()

	// The server-wide write timeout would cut a long-lived stream short.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	lg := middleware.LoggerFrom(c)
	lg.Info().Msg("admin event stream opened")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent(string(ev.Kind), ev)
			return true
		case <-ctx.Done():
			return false
		}
	})

	lg.Info().Msg("admin event stream closed")
}
