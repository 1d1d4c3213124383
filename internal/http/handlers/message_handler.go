// Message HTTP handler.
//
// Members contact the moderators through a single write-only endpoint; the
// admin console lists what arrives.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendMessageRequest is the JSON payload for contacting the moderators.
type SendMessageRequest struct {
	// Content is the message body (trimmed, capped server-side).
	Content string `json:"content" binding:"required" example:"Please review the answer on question X."`
}

// SendMessage godoc
// @ID          sendMessage
// @Summary     Send a message to the moderators
// @Description Stores an admin-bound message from the current user.
// @Tags        Messages
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.SendMessageRequest  true  "Message payload"
//
// @Success     201  {object}  domain.Message
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content required")
		return
	}

	msg, err := h.messageSvc.Send(c.Request.Context(), currentUser(c), req.Content)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, msg)
}
