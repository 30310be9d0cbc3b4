package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quartz/internal/chat"
	"quartz/pkg/response"
)

// respondError translates domain errors into the HTTP error envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
