package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	projects := protected.Group("/projects")
	{
		projects.POST("/:id/messages", handler.Post)
		projects.GET("/:id/messages", handler.ListByProject)
	}

	protected.PATCH("/messages/:id/read", handler.MarkRead)
}

type PostMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Post godoc
// @Summary      Send a project message
// @Description  Append a message to the project conversation (participants only)
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Project ID"
// @Param        body  body      PostMessageRequest  true  "Message JSON"
// @Success      201   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /projects/{id}/messages [post]
// @Security     BearerAuth
func (h *MessageHandler) Post(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	senderID := c.GetString(string(domain.KeyUserID))

	message, err := h.messageUC.PostMessage(c.Request.Context(), senderID, projectID, req.ReceiverID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", message)
}

// ListByProject returns the conversation in posting order.
func (h *MessageHandler) ListByProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))

	messages, err := h.messageUC.ListByProject(c.Request.Context(), actorID, projectID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project messages", messages)
}

// MarkRead flags a message as read. Only the receiver can do this.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	readerID := c.GetString(string(domain.KeyUserID))

	if err := h.messageUC.MarkRead(c.Request.Context(), readerID, messageID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message marked as read", nil)
}
