package http

import (
	"net/http"
	"time"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"

	"github.com/labstack/echo/v4"
)

type openTicketRequest struct {
	CustomerID    string `json:"customer_id" validate:"omitempty,uuid"`
	Subject       string `json:"subject" validate:"required,max=200"`
	Description   string `json:"description" validate:"required,max=5000"`
	TicketType    string `json:"ticket_type" validate:"required"`
	Priority      string `json:"priority" validate:"required"`
	OrderID       string `json:"order_id" validate:"omitempty,uuid"`
	DeclarationID string `json:"declaration_id" validate:"omitempty,uuid"`
}

// OpenTicket opens a support ticket. Staff may open one on behalf of a
// customer by passing customer_id.
func (s *Server) OpenTicket(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req openTicketRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customerID := actor.ID()
	if req.CustomerID != "" {
		customerID, err = kernel.UUIDFromString(req.CustomerID)
		if err != nil {
			return badRequest(c, "invalid customer id")
		}
	}

	parseOptionalUUID := func(raw, label string) (*kernel.UUID, error) {
		if raw == "" {
			return nil, nil
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, badRequest(c, "invalid "+label)
		}
		return &id, nil
	}

	orderID, err := parseOptionalUUID(req.OrderID, "order id")
	if err != nil {
		return err
	}
	declarationID, err := parseOptionalUUID(req.DeclarationID, "declaration id")
	if err != nil {
		return err
	}

	ticketID := kernel.NewUUID()
	cmd, err := commands.NewOpenTicketCommand(
		ticketID, actor, customerID,
		req.Subject, req.Description,
		ticket.Type(req.TicketType), ticket.Priority(req.Priority),
		orderID, declarationID)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.OpenTicket.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": ticketID.String()})
}

type ticketListItemResponse struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	CustomerID string    `json:"customer_id"`
	Subject    string    `json:"subject"`
	TicketType string    `json:"ticket_type"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetTickets lists tickets, optionally filtered with ?status=.
func (s *Server) GetTickets(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var status *ticket.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed := ticket.Status(raw)
		status = &parsed
	}

	query, err := queries.NewGetTicketsQuery(actor, status)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetTickets.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]ticketListItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, ticketListItemResponse{
			ID:         r.ID.String(),
			Number:     r.Number,
			CustomerID: r.CustomerID.String(),
			Subject:    r.Subject,
			TicketType: r.TicketType,
			Priority:   r.Priority,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

type ticketResponse struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	CustomerID    string     `json:"customer_id"`
	Subject       string     `json:"subject"`
	Description   string     `json:"description"`
	TicketType    string     `json:"ticket_type"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	AssignedTo    *string    `json:"assigned_to,omitempty"`
	OrderID       *string    `json:"order_id,omitempty"`
	DeclarationID *string    `json:"declaration_id,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	str := id.String()
	return &str
}

// GetTicket returns one ticket with full details.
func (s *Server) GetTicket(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	ticketID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	query, err := queries.NewGetTicketQuery(actor, ticketID)
	if err != nil {
		return s.respondError(c, err)
	}

	r, err := s.queries.GetTicket.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, ticketResponse{
		ID:            r.ID.String(),
		Number:        r.Number,
		CustomerID:    r.CustomerID.String(),
		Subject:       r.Subject,
		Description:   r.Description,
		TicketType:    r.TicketType,
		Priority:      r.Priority,
		Status:        r.Status,
		AssignedTo:    optionalUUIDString(r.AssignedTo),
		OrderID:       optionalUUIDString(r.OrderID),
		DeclarationID: optionalUUIDString(r.DeclarationID),
		ResolvedAt:    r.ResolvedAt,
		ClosedAt:      r.ClosedAt,
		CreatedAt:     r.CreatedAt,
	})
}

type updateTicketRequest struct {
	Status     *string `json:"status"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,uuid"`
	Priority   *string `json:"priority"`
}

// UpdateTicket changes status, assignee or priority. Staff only, enforced
// by the command handler.
func (s *Server) UpdateTicket(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	ticketID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var status *ticket.Status
	if req.Status != nil {
		parsed := ticket.Status(*req.Status)
		status = &parsed
	}
	var priority *ticket.Priority
	if req.Priority != nil {
		parsed := ticket.Priority(*req.Priority)
		priority = &parsed
	}
	var assignedTo *kernel.UUID
	if req.AssignedTo != nil {
		id, err := kernel.UUIDFromString(*req.AssignedTo)
		if err != nil {
			return badRequest(c, "invalid assignee id")
		}
		assignedTo = &id
	}

	cmd, err := commands.NewUpdateTicketCommand(ticketID, actor, status, assignedTo, priority)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.UpdateTicket.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type ticketMessageResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	AuthorKind string    `json:"author_kind"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetTicketMessages returns the ticket's conversation, oldest first.
func (s *Server) GetTicketMessages(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	ticketID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	query, err := queries.NewGetTicketMessagesQuery(actor, ticketID)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetTicketMessages.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]ticketMessageResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, ticketMessageResponse{
			ID:         r.ID.String(),
			AuthorName: r.AuthorName,
			AuthorKind: r.AuthorKind,
			Body:       r.Body,
			CreatedAt:  r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

type addTicketMessageRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

// AddTicketMessage appends a message to the ticket conversation.
func (s *Server) AddTicketMessage(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	ticketID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	var req addTicketMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddTicketMessageCommand(ticketID, actor, req.Body)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.AddTicketMessage.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type finishTicketRequest struct {
	Note string `json:"note" validate:"max=1000"`
}

func (s *Server) finishTicket(c echo.Context, outcome ticket.Status, message string) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	ticketID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid ticket id")
	}

	var req finishTicketRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewFinishTicketCommand(ticketID, actor, outcome, req.Note)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.FinishTicket.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// ResolveTicket marks the ticket resolved.
func (s *Server) ResolveTicket(c echo.Context) error {
	return s.finishTicket(c, ticket.StatusResolved, "ticket resolved")
}

// CloseTicket closes the ticket for good.
func (s *Server) CloseTicket(c echo.Context) error {
	return s.finishTicket(c, ticket.StatusClosed, "ticket closed")
}

type supportStatisticsResponse struct {
	TotalTickets int            `json:"total_tickets"`
	ByStatus     map[string]int `json:"by_status"`
}

// GetSupportStatistics returns aggregate ticket counts.
func (s *Server) GetSupportStatistics(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetSupportStatisticsQuery(actor)
	if err != nil {
		return s.respondError(c, err)
	}

	stats, err := s.queries.GetSupportStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, supportStatisticsResponse{
		TotalTickets: stats.TotalTickets,
		ByStatus:     stats.ByStatus,
	})
}
