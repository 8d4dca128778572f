package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"insurance-renewal-assistant/internal/agent/tools"
	chatHTTP "insurance-renewal-assistant/internal/chat/delivery/http"
	chatUC "insurance-renewal-assistant/internal/chat/usecase"
	"insurance-renewal-assistant/internal/middleware"
)

// setupChatDomain initializes the conversational renewal flow and
// registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository / clients
//  2. Create UseCase
//  3. Create HTTP Handler
//  4. Register Routes
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Tool registry for LLM function calling
	registry := tools.NewRegistry()

	// 2. UseCase
	uc := chatUC.New(srv.l, srv.llm, registry,
		srv.config.Chat.Temperature,
		srv.config.Chat.MaxTokens,
		srv.config.Chat.MaxIterations,
	)

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/chat
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
