package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"insurance-renewal-assistant/internal/chat"
	"insurance-renewal-assistant/pkg/response"
)

// Chat godoc
// @Summary     Run one conversation turn
// @Description Processes the latest user message and streams the assistant reply as Server-Sent Events. The final "done" event carries the full reply and the updated conversation state the client must send back on the next turn.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       body body chatReq true "Transcript and round-tripped state"
// @Success     200 {string} string "SSE stream of chunk/done events"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		h.writeSSEError(c, err)
		return
	}

	h.writeSSEHeaders(c)

	// Stream the reply word by word, then the full payload.
	words := strings.Split(output.Reply, " ")
	for i, word := range words {
		content := word
		if i > 0 {
			content = " " + word
		}
		h.writeSSEEvent(c, chunkEvent{Type: "chunk", Content: content})
	}

	h.writeSSEEvent(c, doneEvent{
		Type:  "done",
		Reply: output.Reply,
		State: output.State,
	})
}

func (h *handler) writeSSEHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
	c.Writer.Header().Set("Cache-Control", "no-cache, no-transform")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
}

func (h *handler) writeSSEEvent(c *gin.Context, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "writeSSEEvent: marshal: %v", err)
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
	c.Writer.Flush()
}

// writeSSEError reports a failed turn in the same SSE framing the client
// already listens on.
func (h *handler) writeSSEError(c *gin.Context, err error) {
	message := "Something went wrong. Please try again."
	if err == chat.ErrEmptyMessages {
		message = err.Error()
	}

	h.writeSSEHeaders(c)
	h.writeSSEEvent(c, errorEvent{Type: "error", Message: message})
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
