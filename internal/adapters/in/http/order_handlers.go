package http

import (
	"net/http"
	"time"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createOrderRequest struct {
	CustomerID         string `json:"customer_id" validate:"omitempty,uuid"`
	ProductName        string `json:"product_name" validate:"required,max=500"`
	ProductDescription string `json:"product_description" validate:"max=2000"`
	Quantity           int    `json:"quantity" validate:"required,min=1"`
	UnitPrice          string `json:"unit_price" validate:"required"`
	DeliveryAddress    string `json:"delivery_address" validate:"required,max=500"`
	DeliveryPhone      string `json:"delivery_phone" validate:"omitempty,phone"`
	DeliveryNotes      string `json:"delivery_notes" validate:"max=1000"`
}

// CreateOrder places a new purchase order. Staff may place one on behalf of a
// customer by passing customer_id; everyone else orders for themselves.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return badRequest(c, "invalid unit price")
	}

	customerID := actor.ID()
	if req.CustomerID != "" {
		customerID, err = kernel.UUIDFromString(req.CustomerID)
		if err != nil {
			return badRequest(c, "invalid customer id")
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor, customerID,
		req.ProductName, req.ProductDescription, req.Quantity, unitPrice,
		req.DeliveryAddress, req.DeliveryPhone, req.DeliveryNotes)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

type orderListItemResponse struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	CustomerID     string          `json:"customer_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int             `json:"quantity"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         string          `json:"status"`
	DeliveryStatus string          `json:"delivery_status"`
	OrderDate      time.Time       `json:"order_date"`
}

// GetOrders lists orders, optionally filtered with ?status=.
func (s *Server) GetOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed := order.Status(raw)
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(actor, status)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]orderListItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, orderListItemResponse{
			ID:             r.ID.String(),
			Number:         r.Number,
			CustomerID:     r.CustomerID.String(),
			ProductName:    r.ProductName,
			Quantity:       r.Quantity,
			TotalPrice:     r.TotalPrice,
			Status:         r.Status,
			DeliveryStatus: r.DeliveryStatus,
			OrderDate:      r.OrderDate,
		})
	}
	return c.JSON(http.StatusOK, items)
}

type orderResponse struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	CustomerID         string          `json:"customer_id"`
	ProductName        string          `json:"product_name"`
	ProductDescription string          `json:"product_description,omitempty"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Status             string          `json:"status"`
	DeliveryStatus     string          `json:"delivery_status"`
	TrackingNumber     string          `json:"tracking_number,omitempty"`
	TrackingURL        string          `json:"tracking_url,omitempty"`
	DeliveryAddress    string          `json:"delivery_address"`
	DeliveryPhone      string          `json:"delivery_phone,omitempty"`
	DeliveryNotes      string          `json:"delivery_notes,omitempty"`
	OrderDate          time.Time       `json:"order_date"`
	EstimatedDelivery  *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery     *time.Time      `json:"actual_delivery,omitempty"`
	AdminNotes         string          `json:"admin_notes,omitempty"`
}

// GetOrder returns one order with full details.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	r, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse{
		ID:                 r.ID.String(),
		Number:             r.Number,
		CustomerID:         r.CustomerID.String(),
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		Quantity:           r.Quantity,
		UnitPrice:          r.UnitPrice,
		TotalPrice:         r.TotalPrice,
		Status:             r.Status,
		DeliveryStatus:     r.DeliveryStatus,
		TrackingNumber:     r.TrackingNumber,
		TrackingURL:        r.TrackingURL,
		DeliveryAddress:    r.DeliveryAddress,
		DeliveryPhone:      r.DeliveryPhone,
		DeliveryNotes:      r.DeliveryNotes,
		OrderDate:          r.OrderDate,
		EstimatedDelivery:  r.EstimatedDelivery,
		ActualDelivery:     r.ActualDelivery,
		AdminNotes:         r.AdminNotes,
	})
}

type updateOrderRequest struct {
	DeliveryAddress   *string    `json:"delivery_address"`
	DeliveryPhone     *string    `json:"delivery_phone" validate:"omitempty,phone"`
	DeliveryNotes     *string    `json:"delivery_notes"`
	TrackingNumber    *string    `json:"tracking_number"`
	TrackingURL       *string    `json:"tracking_url" validate:"omitempty,url"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	AdminNotes        *string    `json:"admin_notes"`
}

// UpdateOrder applies a partial update. Absent fields stay untouched.
func (s *Server) UpdateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor, commands.UpdateOrderFields{
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryPhone:     req.DeliveryPhone,
		DeliveryNotes:     req.DeliveryNotes,
		TrackingNumber:    req.TrackingNumber,
		TrackingURL:       req.TrackingURL,
		EstimatedDelivery: req.EstimatedDelivery,
		AdminNotes:        req.AdminNotes,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type updateOrderStatusRequest struct {
	Status         *string `json:"status"`
	DeliveryStatus *string `json:"delivery_status"`
	Note           string  `json:"note" validate:"max=1000"`
}

// PostOrderStatusUpdate moves an order through its workflow. Staff only,
// enforced by the command handler.
func (s *Server) PostOrderStatusUpdate(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var status *order.Status
	if req.Status != nil {
		parsed := order.Status(*req.Status)
		status = &parsed
	}
	var deliveryStatus *order.DeliveryStatus
	if req.DeliveryStatus != nil {
		parsed := order.DeliveryStatus(*req.DeliveryStatus)
		deliveryStatus = &parsed
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actor, status, deliveryStatus, req.Note)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "order status updated"})
}

type cancelOrderRequest struct {
	Note string `json:"note" validate:"max=1000"`
}

// CancelOrder cancels an order that has not shipped yet.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req cancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, req.Note)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "order cancelled"})
}

// DeleteOrder removes an order entirely. Staff only, enforced by the
// command handler.
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actor)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type statusUpdateResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	DeliveryStatus string    `json:"delivery_status,omitempty"`
	Note           string    `json:"note,omitempty"`
	UpdatedByName  string    `json:"updated_by_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetOrderStatusUpdates returns the order's status change log, oldest first.
func (s *Server) GetOrderStatusUpdates(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderStatusUpdatesQuery(actor, orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetOrderStatusUpdates.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]statusUpdateResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, statusUpdateResponse{
			ID:             r.ID.String(),
			Status:         r.Status,
			DeliveryStatus: r.DeliveryStatus,
			Note:           r.Note,
			UpdatedByName:  r.UpdatedByName,
			CreatedAt:      r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

// TrackOrder returns the compact tracking view of an order.
func (s *Server) TrackOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewTrackOrderQuery(actor, orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	r, err := s.queries.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, trackOrderResponse{
		Number:            r.Number,
		Status:            r.Status,
		DeliveryStatus:    r.DeliveryStatus,
		TrackingNumber:    r.TrackingNumber,
		TrackingURL:       r.TrackingURL,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
	})
}

type trackOrderResponse struct {
	Number            string     `json:"number"`
	Status            string     `json:"status"`
	DeliveryStatus    string     `json:"delivery_status"`
	TrackingNumber    string     `json:"tracking_number,omitempty"`
	TrackingURL       string     `json:"tracking_url,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
}

// GetOrderStatistics returns aggregate order counts and value. Staff see the
// whole book, customers their own slice.
func (s *Server) GetOrderStatistics(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatisticsQuery(actor)
	if err != nil {
		return s.respondError(c, err)
	}

	stats, err := s.queries.GetOrderStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderStatisticsResponse{
		TotalOrders: stats.TotalOrders,
		ByStatus:    stats.ByStatus,
		TotalValue:  stats.TotalValue,
	})
}

type orderStatisticsResponse struct {
	TotalOrders int             `json:"total_orders"`
	ByStatus    map[string]int  `json:"by_status"`
	TotalValue  decimal.Decimal `json:"total_value"`
}
