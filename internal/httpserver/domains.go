package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "agentic-task-planner/internal/chat/delivery/http"
	chatRepo "agentic-task-planner/internal/chat/repository/sqlite"
	chatUC "agentic-task-planner/internal/chat/usecase"
	"agentic-task-planner/internal/middleware"
	plannerHTTP "agentic-task-planner/internal/planner/delivery/http"
	plannerUC "agentic-task-planner/internal/planner/usecase"
	taskHTTP "agentic-task-planner/internal/task/delivery/http"
	taskRepo "agentic-task-planner/internal/task/repository/sqlite"
	taskUC "agentic-task-planner/internal/task/usecase"
)

// setupPlannerDomain wires the prompt dispatch pipeline and registers
// its routes.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := plannerUC.New(srv.l, srv.llm, srv.calendar, srv.mailer, srv.dateMath, srv.timezone, srv.calendarID)
	h := plannerHTTP.New(srv.l, uc)

	plannerHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}

// setupChatDomain wires the cached chat entry point and registers its
// routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := chatRepo.New(srv.db, srv.l)
	uc := chatUC.New(srv.l, srv.llm, repo, srv.chat.CacheTTL, srv.chat.CacheSize)
	h := chatHTTP.New(srv.l, uc)

	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

// setupTaskDomain wires task CRUD and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
