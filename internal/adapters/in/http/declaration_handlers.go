package http

import (
	"net/http"
	"time"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type declarationDetailsRequest struct {
	OrderID         string `json:"order_id" validate:"omitempty,uuid"`
	DeclarationType string `json:"declaration_type" validate:"required"`

	PassportSeries    string `json:"passport_series" validate:"required"`
	PassportNumber    string `json:"passport_number" validate:"required"`
	PassportIssueDate string `json:"passport_issue_date" validate:"required"`
	PassportExpiry    string `json:"passport_expiry_date" validate:"required"`
	PassportAuthority string `json:"passport_issuing_authority" validate:"required"`

	ContactName  string `json:"contact_name" validate:"required,max=200"`
	ContactPhone string `json:"contact_phone" validate:"required,phone"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`

	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
	DeliveryCountry string `json:"delivery_country" validate:"required,max=100"`
	DeliveryCity    string `json:"delivery_city" validate:"required,max=100"`

	ProductName        string `json:"product_name" validate:"required,max=500"`
	ProductDescription string `json:"product_description" validate:"max=2000"`
	ProductQuantity    int    `json:"product_quantity" validate:"required,min=1"`
	ProductUnit        string `json:"product_unit" validate:"required,max=20"`
	ProductValue       string `json:"product_value" validate:"required"`
	Currency           string `json:"currency" validate:"required,len=3"`

	Notes string `json:"notes" validate:"max=2000"`
}

const dateLayout = "2006-01-02"

func (req declarationDetailsRequest) toParams(id, customerID kernel.UUID) (declaration.NewDeclarationParams, error) {
	issueDate, err := time.Parse(dateLayout, req.PassportIssueDate)
	if err != nil {
		return declaration.NewDeclarationParams{}, errs.NewValueIsInvalidErrorWithCause("passport issue date", err)
	}
	expiryDate, err := time.Parse(dateLayout, req.PassportExpiry)
	if err != nil {
		return declaration.NewDeclarationParams{}, errs.NewValueIsInvalidErrorWithCause("passport expiry date", err)
	}

	passport, err := kernel.NewPassport(
		req.PassportSeries, req.PassportNumber, issueDate, expiryDate, req.PassportAuthority)
	if err != nil {
		return declaration.NewDeclarationParams{}, err
	}

	value, err := decimal.NewFromString(req.ProductValue)
	if err != nil {
		return declaration.NewDeclarationParams{}, errs.NewValueIsInvalidErrorWithCause("product value", err)
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		parsed, err := kernel.UUIDFromString(req.OrderID)
		if err != nil {
			return declaration.NewDeclarationParams{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		orderID = &parsed
	}

	return declaration.NewDeclarationParams{
		ID:                 id,
		CustomerID:         customerID,
		OrderID:            orderID,
		DeclarationType:    declaration.Type(req.DeclarationType),
		Passport:           passport,
		ContactName:        req.ContactName,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		DeliveryAddress:    req.DeliveryAddress,
		DeliveryCountry:    req.DeliveryCountry,
		DeliveryCity:       req.DeliveryCity,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductQuantity:    req.ProductQuantity,
		ProductUnit:        req.ProductUnit,
		ProductValue:       value,
		Currency:           req.Currency,
		Notes:              req.Notes,
	}, nil
}

// CreateDeclaration files a new draft customs declaration for the caller.
func (s *Server) CreateDeclaration(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req declarationDetailsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	declarationID := kernel.NewUUID()
	params, err := req.toParams(declarationID, actor.ID())
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCreateDeclarationCommand(actor, params)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.CreateDeclaration.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": declarationID.String()})
}

type declarationListItemResponse struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	CustomerID      string          `json:"customer_id"`
	DeclarationType string          `json:"declaration_type"`
	ProductName     string          `json:"product_name"`
	ProductValue    decimal.Decimal `json:"product_value"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GetDeclarations lists declarations, optionally filtered with ?status=.
func (s *Server) GetDeclarations(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var status *declaration.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed := declaration.Status(raw)
		status = &parsed
	}

	query, err := queries.NewGetDeclarationsQuery(actor, status)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetDeclarations.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]declarationListItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, declarationListItemResponse{
			ID:              r.ID.String(),
			Number:          r.Number,
			CustomerID:      r.CustomerID.String(),
			DeclarationType: r.DeclarationType,
			ProductName:     r.ProductName,
			ProductValue:    r.ProductValue,
			Currency:        r.Currency,
			Status:          r.Status,
			SubmittedAt:     r.SubmittedAt,
			CreatedAt:       r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

type declarationResponse struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	CustomerID         string          `json:"customer_id"`
	OrderID            *string         `json:"order_id,omitempty"`
	DeclarationType    string          `json:"declaration_type"`
	PassportSeries     string          `json:"passport_series"`
	PassportNumber     string          `json:"passport_number"`
	ContactName        string          `json:"contact_name"`
	ContactPhone       string          `json:"contact_phone"`
	ContactEmail       string          `json:"contact_email,omitempty"`
	DeliveryAddress    string          `json:"delivery_address"`
	DeliveryCountry    string          `json:"delivery_country"`
	DeliveryCity       string          `json:"delivery_city"`
	ProductName        string          `json:"product_name"`
	ProductDescription string          `json:"product_description,omitempty"`
	ProductQuantity    int             `json:"product_quantity"`
	ProductUnit        string          `json:"product_unit"`
	ProductValue       decimal.Decimal `json:"product_value"`
	Currency           string          `json:"currency"`
	CustomsCode        string          `json:"customs_code,omitempty"`
	CustomsValue       decimal.Decimal `json:"customs_value"`
	CustomsDuty        decimal.Decimal `json:"customs_duty"`
	Notes              string          `json:"notes,omitempty"`
	AdminNotes         string          `json:"admin_notes,omitempty"`
	Status             string          `json:"status"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	ReviewedByName     string          `json:"reviewed_by_name,omitempty"`
	SubmittedAt        *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// GetDeclaration returns one declaration with full details.
func (s *Server) GetDeclaration(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	query, err := queries.NewGetDeclarationQuery(actor, declarationID)
	if err != nil {
		return s.respondError(c, err)
	}

	r, err := s.queries.GetDeclaration.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	var orderID *string
	if r.OrderID != nil {
		str := r.OrderID.String()
		orderID = &str
	}

	return c.JSON(http.StatusOK, declarationResponse{
		ID:                 r.ID.String(),
		Number:             r.Number,
		CustomerID:         r.CustomerID.String(),
		OrderID:            orderID,
		DeclarationType:    r.DeclarationType,
		PassportSeries:     r.PassportSeries,
		PassportNumber:     r.PassportNumber,
		ContactName:        r.ContactName,
		ContactPhone:       r.ContactPhone,
		ContactEmail:       r.ContactEmail,
		DeliveryAddress:    r.DeliveryAddress,
		DeliveryCountry:    r.DeliveryCountry,
		DeliveryCity:       r.DeliveryCity,
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		ProductQuantity:    r.ProductQuantity,
		ProductUnit:        r.ProductUnit,
		ProductValue:       r.ProductValue,
		Currency:           r.Currency,
		CustomsCode:        r.CustomsCode,
		CustomsValue:       r.CustomsValue,
		CustomsDuty:        r.CustomsDuty,
		Notes:              r.Notes,
		AdminNotes:         r.AdminNotes,
		Status:             r.Status,
		RejectionReason:    r.RejectionReason,
		ReviewedByName:     r.ReviewedByName,
		SubmittedAt:        r.SubmittedAt,
		ReviewedAt:         r.ReviewedAt,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
	})
}

type updateDeclarationRequest struct {
	Details *declarationDetailsRequest `json:"details"`

	Customs *struct {
		Code  string `json:"code" validate:"required"`
		Value string `json:"value" validate:"required"`
		Duty  string `json:"duty" validate:"required"`
	} `json:"customs"`

	AdminNotes *string `json:"admin_notes"`
}

// UpdateDeclaration applies a partial update. Owners replace draft details,
// staff set the customs assessment and admin notes.
func (s *Server) UpdateDeclaration(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	var req updateDeclarationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var details *declaration.NewDeclarationParams
	if req.Details != nil {
		params, err := req.Details.toParams(declarationID, actor.ID())
		if err != nil {
			return s.respondError(c, err)
		}
		details = &params
	}

	var customs *commands.CustomsFields
	if req.Customs != nil {
		value, err := decimal.NewFromString(req.Customs.Value)
		if err != nil {
			return badRequest(c, "invalid customs value")
		}
		duty, err := decimal.NewFromString(req.Customs.Duty)
		if err != nil {
			return badRequest(c, "invalid customs duty")
		}
		customs = &commands.CustomsFields{Code: req.Customs.Code, Value: value, Duty: duty}
	}

	cmd, err := commands.NewUpdateDeclarationCommand(declarationID, actor, details, customs, req.AdminNotes)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.UpdateDeclaration.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SubmitDeclaration hands a draft over for review.
func (s *Server) SubmitDeclaration(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	cmd, err := commands.NewSubmitDeclarationCommand(declarationID, actor)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.SubmitDeclaration.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "declaration submitted for review"})
}

type reviewReasonRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

func (s *Server) reviewDeclaration(c echo.Context, decision commands.ReviewDecision, reason string) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	cmd, err := commands.NewReviewDeclarationCommand(declarationID, actor, decision, reason)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.ReviewDeclaration.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "declaration " + string(decision)})
}

// ApproveDeclaration records a broker's approval. Staff only, enforced by
// the command handler.
func (s *Server) ApproveDeclaration(c echo.Context) error {
	var req reviewReasonRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return s.reviewDeclaration(c, commands.DecisionApprove, req.Reason)
}

type rejectDeclarationRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// RejectDeclaration records a broker's rejection. A reason is mandatory.
func (s *Server) RejectDeclaration(c echo.Context) error {
	var req rejectDeclarationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return s.reviewDeclaration(c, commands.DecisionReject, req.Reason)
}

type declarationStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=under_review approved rejected"`
	Reason string `json:"reason" validate:"max=1000"`
}

// PostDeclarationStatusUpdate records an arbitrary review decision,
// including taking a submitted declaration under review.
func (s *Server) PostDeclarationStatusUpdate(c echo.Context) error {
	var req declarationStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return s.reviewDeclaration(c, commands.ReviewDecision(req.Status), req.Reason)
}

// CompleteDeclaration closes out an approved declaration.
func (s *Server) CompleteDeclaration(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	cmd, err := commands.NewCompleteDeclarationCommand(declarationID, actor)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.CompleteDeclaration.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "declaration completed"})
}

// DeleteDeclaration removes a declaration. Staff only, enforced by the
// command handler.
func (s *Server) DeleteDeclaration(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	cmd, err := commands.NewDeleteDeclarationCommand(declarationID, actor)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.DeleteDeclaration.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDeclarationStatusUpdates returns the declaration's status change log,
// oldest first.
func (s *Server) GetDeclarationStatusUpdates(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	query, err := queries.NewGetDeclarationStatusUpdatesQuery(actor, declarationID)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetDeclarationStatusUpdates.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]statusUpdateResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, statusUpdateResponse{
			ID:            r.ID.String(),
			Status:        r.Status,
			Note:          r.Note,
			UpdatedByName: r.UpdatedByName,
			CreatedAt:     r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

// GetDeclarationDocument streams the printable declaration document.
func (s *Server) GetDeclarationDocument(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	declarationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid declaration id")
	}

	query, err := queries.NewGetDeclarationDocumentQuery(actor, declarationID)
	if err != nil {
		return s.respondError(c, err)
	}

	document, err := s.queries.GetDeclarationDocument.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, document)
}

type declarationStatisticsResponse struct {
	TotalDeclarations int            `json:"total_declarations"`
	ByStatus          map[string]int `json:"by_status"`
}

// GetDeclarationStatistics returns aggregate declaration counts.
func (s *Server) GetDeclarationStatistics(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeclarationStatisticsQuery(actor)
	if err != nil {
		return s.respondError(c, err)
	}

	stats, err := s.queries.GetDeclarationStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, declarationStatisticsResponse{
		TotalDeclarations: stats.TotalDeclarations,
		ByStatus:          stats.ByStatus,
	})
}
