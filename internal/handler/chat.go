package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"summerhome/internal/model"
	"summerhome/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat-based recommendation requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	startTime := time.Now()
	suggestion, err := h.chatService.Suggest(c.Request.Context(), req.Message)
	if err != nil {
		// Upstream failures are a chat-level condition, not a server fault
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chat failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{
		Suggestion: suggestion,
		Took:       time.Since(startTime).Milliseconds(),
	})
}

// ChatStream handles POST /api/v1/chat/stream - SSE streaming chat
func (h *ChatHandler) ChatStream(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	sendSSE(c, "start", map[string]any{"message": req.Message})
	flusher.Flush()

	suggestion, err := h.chatService.SuggestStream(c.Request.Context(), req.Message, func(thinking, content string) error {
		if thinking != "" {
			sendSSE(c, "thinking", map[string]any{"content": thinking})
		}
		if content != "" {
			sendSSE(c, "content", map[string]any{"content": content})
		}
		flusher.Flush()
		return nil
	})

	if err != nil {
		sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
		return
	}

	sendSSE(c, "suggestion", suggestion)
	flusher.Flush()

	sendSSE(c, "done", nil)
	flusher.Flush()
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
			return
		}
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
	} else {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
	}
}
