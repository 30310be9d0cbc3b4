package http

import (
	"github.com/gin-gonic/gin"

	"quartz/internal/middleware"
	"quartz/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Parses the message, executes the command it carries and returns the assistant's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.HandleMessage(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(out))
}
