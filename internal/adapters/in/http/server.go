// Package http is the inbound REST adapter. It binds and validates request
// bodies, resolves the acting party from the JWT, and translates application
// errors into HTTP status codes. All business rules live below in commands
// and queries.
package http

import (
	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	RegisterAccount commands.RegisterAccountCommandHandler
	VerifyEmail     commands.VerifyEmailCommandHandler
	UpdateProfile   commands.UpdateProfileCommandHandler

	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	CreateDeclaration   commands.CreateDeclarationCommandHandler
	UpdateDeclaration   commands.UpdateDeclarationCommandHandler
	SubmitDeclaration   commands.SubmitDeclarationCommandHandler
	ReviewDeclaration   commands.ReviewDeclarationCommandHandler
	CompleteDeclaration commands.CompleteDeclarationCommandHandler
	DeleteDeclaration   commands.DeleteDeclarationCommandHandler

	OpenTicket       commands.OpenTicketCommandHandler
	UpdateTicket     commands.UpdateTicketCommandHandler
	AddTicketMessage commands.AddTicketMessageCommandHandler
	FinishTicket     commands.FinishTicketCommandHandler

	CreateArticle commands.CreateArticleCommandHandler
	UpdateArticle commands.UpdateArticleCommandHandler
	DeleteArticle commands.DeleteArticleCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetAccount        queries.GetAccountQueryHandler
	GetAccountByEmail queries.GetAccountByEmailQueryHandler

	GetOrders             queries.GetOrdersQueryHandler
	GetOrder              queries.GetOrderQueryHandler
	GetOrderStatusUpdates queries.GetOrderStatusUpdatesQueryHandler
	GetOrderStatistics    queries.GetOrderStatisticsQueryHandler
	TrackOrder            queries.TrackOrderQueryHandler

	GetDeclarations             queries.GetDeclarationsQueryHandler
	GetDeclaration              queries.GetDeclarationQueryHandler
	GetDeclarationStatusUpdates queries.GetDeclarationStatusUpdatesQueryHandler
	GetDeclarationStatistics    queries.GetDeclarationStatisticsQueryHandler
	GetDeclarationDocument      queries.GetDeclarationDocumentQueryHandler

	GetTickets           queries.GetTicketsQueryHandler
	GetTicket            queries.GetTicketQueryHandler
	GetTicketMessages    queries.GetTicketMessagesQueryHandler
	GetSupportStatistics queries.GetSupportStatisticsQueryHandler

	GetArticles queries.GetArticlesQueryHandler
	GetArticle  queries.GetArticleQueryHandler
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	commands Commands
	queries  Queries
	issuer   *auth.Issuer
	log      *logrus.Logger
}

// NewServer creates the REST server.
func NewServer(cmds Commands, qrys Queries, issuer *auth.Issuer, log *logrus.Logger) *Server {
	return &Server{commands: cmds, queries: qrys, issuer: issuer, log: log}
}

// RegisterRoutes mounts the API under /api/v1. Everything except
// registration, login, refresh and email verification requires a valid
// access token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = newRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/refresh", s.Refresh)
	api.POST("/auth/verify-email", s.VerifyEmail)

	api.GET("/articles", s.GetArticles, s.optionalAuthMiddleware)
	api.GET("/articles/:id", s.GetArticle, s.optionalAuthMiddleware)

	authed := api.Group("", s.authMiddleware)

	authed.GET("/users/me", s.GetProfile)
	authed.PATCH("/users/me", s.UpdateProfile)
	authed.GET("/accounts/:id", s.GetAccount)

	authed.GET("/orders", s.GetOrders)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/statistics", s.GetOrderStatistics)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PATCH("/orders/:id", s.UpdateOrder)
	authed.DELETE("/orders/:id", s.DeleteOrder)
	authed.POST("/orders/:id/cancel", s.CancelOrder)
	authed.GET("/orders/:id/status-updates", s.GetOrderStatusUpdates)
	authed.POST("/orders/:id/status-updates", s.PostOrderStatusUpdate)
	authed.GET("/orders/:id/track", s.TrackOrder)

	authed.GET("/declarations", s.GetDeclarations)
	authed.POST("/declarations", s.CreateDeclaration)
	authed.GET("/declarations/statistics", s.GetDeclarationStatistics)
	authed.GET("/declarations/:id", s.GetDeclaration)
	authed.PATCH("/declarations/:id", s.UpdateDeclaration)
	authed.DELETE("/declarations/:id", s.DeleteDeclaration)
	authed.POST("/declarations/:id/submit", s.SubmitDeclaration)
	authed.POST("/declarations/:id/approve", s.ApproveDeclaration)
	authed.POST("/declarations/:id/reject", s.RejectDeclaration)
	authed.POST("/declarations/:id/complete", s.CompleteDeclaration)
	authed.GET("/declarations/:id/status-updates", s.GetDeclarationStatusUpdates)
	authed.POST("/declarations/:id/status-updates", s.PostDeclarationStatusUpdate)
	authed.GET("/declarations/:id/document", s.GetDeclarationDocument)

	authed.GET("/support/tickets", s.GetTickets)
	authed.POST("/support/tickets", s.OpenTicket)
	authed.GET("/support/statistics", s.GetSupportStatistics)
	authed.GET("/support/tickets/:id", s.GetTicket)
	authed.PATCH("/support/tickets/:id", s.UpdateTicket)
	authed.POST("/support/tickets/:id/resolve", s.ResolveTicket)
	authed.POST("/support/tickets/:id/close", s.CloseTicket)
	authed.GET("/support/tickets/:id/messages", s.GetTicketMessages)
	authed.POST("/support/tickets/:id/messages", s.AddTicketMessage)

	authed.POST("/articles", s.CreateArticle)
	authed.PATCH("/articles/:id", s.UpdateArticle)
	authed.DELETE("/articles/:id", s.DeleteArticle)
}
