package queries

import (
	"context"
	"errors"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetDeclarationQueryIsNotConstructed = errors.New(
	"GetDeclarationQuery must be created via NewGetDeclarationQuery constructor",
)

// GetDeclarationQuery retrieves a single declaration. Non-staff callers
// addressing a foreign declaration get a not-found error.
type GetDeclarationQuery struct {
	actor         kernel.Actor
	declarationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeclarationQuery creates a query to retrieve one declaration.
func NewGetDeclarationQuery(actor kernel.Actor, declarationID kernel.UUID) (GetDeclarationQuery, error) {
	if err := errors.Join(actor.Validate(), declarationID.Validate()); err != nil {
		return GetDeclarationQuery{}, err
	}
	return GetDeclarationQuery{actor: actor, declarationID: declarationID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationQueryIsNotConstructed)
}

func (q GetDeclarationQuery) Actor() kernel.Actor        { return q.actor }
func (q GetDeclarationQuery) DeclarationID() kernel.UUID { return q.declarationID }

// GetDeclarationQueryResponse is the full declaration detail read model.
type GetDeclarationQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	CustomerID         kernel.UUID
	OrderID            *kernel.UUID
	DeclarationType    string
	PassportSeries     string
	PassportNumber     string
	ContactName        string
	ContactPhone       string
	ContactEmail       string
	DeliveryAddress    string
	DeliveryCountry    string
	DeliveryCity       string
	ProductName        string
	ProductDescription string
	ProductQuantity    int
	ProductUnit        string
	ProductValue       decimal.Decimal
	Currency           string
	CustomsCode        string
	CustomsValue       decimal.Decimal
	CustomsDuty        decimal.Decimal
	Notes              string
	AdminNotes         string
	Status             string
	RejectionReason    string
	ReviewedByName     string
	SubmittedAt        *time.Time
	ReviewedAt         *time.Time
	CompletedAt        *time.Time
	CreatedAt          time.Time
}

// GetDeclarationQueryHandler retrieves declaration details with direct SQL.
type GetDeclarationQueryHandler struct {
	db *gorm.DB
}

// NewGetDeclarationQueryHandler creates a handler for declaration detail queries.
func NewGetDeclarationQueryHandler(db *gorm.DB) GetDeclarationQueryHandler {
	return GetDeclarationQueryHandler{db: db}
}

// Handle executes the query. Admin notes are blanked for non-staff callers.
func (h GetDeclarationQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationQuery,
) (GetDeclarationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeclarationQueryResponse{}, err
	}

	type row struct {
		ID                 uuid.UUID
		Number             string
		CustomerID         uuid.UUID
		OrderID            *uuid.UUID
		DeclarationType    string
		PassportSeries     string
		PassportNumber     string
		ContactName        string
		ContactPhone       string
		ContactEmail       string
		DeliveryAddress    string
		DeliveryCountry    string
		DeliveryCity       string
		ProductName        string
		ProductDescription string
		ProductQuantity    int
		ProductUnit        string
		ProductValue       decimal.Decimal
		Currency           string
		CustomsCode        string
		CustomsValue       decimal.Decimal
		CustomsDuty        decimal.Decimal
		Notes              string
		AdminNotes         string
		Status             string
		RejectionReason    string
		ReviewedByName     string
		SubmittedAt        *time.Time
		ReviewedAt         *time.Time
		CompletedAt        *time.Time
		CreatedAt          time.Time
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			order_id,
			declaration_type,
			passport_series,
			passport_number,
			contact_name,
			contact_phone,
			contact_email,
			delivery_address,
			delivery_country,
			delivery_city,
			product_name,
			product_description,
			product_quantity,
			product_unit,
			product_value,
			currency,
			customs_code,
			customs_value,
			customs_duty,
			notes,
			admin_notes,
			status,
			rejection_reason,
			reviewed_by_name,
			submitted_at,
			reviewed_at,
			completed_at,
			created_at
		FROM declarations
		WHERE id = ?
	`, query.DeclarationID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetDeclarationQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetDeclarationQueryResponse{}, errs.NewObjectNotFoundError("declaration", query.DeclarationID())
	}

	r := rows[0]
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return GetDeclarationQueryResponse{}, err
	}
	if !query.Actor().CanActOn(customerID) {
		return GetDeclarationQueryResponse{}, errs.NewObjectNotFoundError("declaration", query.DeclarationID())
	}

	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetDeclarationQueryResponse{}, err
	}
	var orderID *kernel.UUID
	if r.OrderID != nil {
		oid, idErr := kernel.UUIDFromBytes(r.OrderID[:])
		if idErr != nil {
			return GetDeclarationQueryResponse{}, idErr
		}
		orderID = &oid
	}

	resp := GetDeclarationQueryResponse{
		ID:                 id,
		Number:             r.Number,
		CustomerID:         customerID,
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
	}
	if !query.Actor().IsStaff() {
		resp.AdminNotes = ""
	}
	return resp, nil
}
