// Package declarationrepo persists customs declaration aggregates together
// with their status history.
package declarationrepo

import (
	"time"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeclarationDTO is the database representation of a declaration aggregate.
// The passport value object is flattened into passport_* columns.
type DeclarationDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number     string     `gorm:"uniqueIndex"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID    *uuid.UUID `gorm:"type:uuid;index"`

	DeclarationType string

	PassportSeries           string
	PassportNumber           string
	PassportIssueDate        time.Time
	PassportExpiryDate       time.Time
	PassportIssuingAuthority string

	ContactName  string
	ContactPhone string
	ContactEmail string

	DeliveryAddress string
	DeliveryCountry string
	DeliveryCity    string

	ProductName        string
	ProductDescription string
	ProductQuantity    int
	ProductUnit        string
	ProductValue       decimal.Decimal `gorm:"type:numeric"`
	Currency           string

	CustomsCode  string
	CustomsValue decimal.Decimal `gorm:"type:numeric"`
	CustomsDuty  decimal.Decimal `gorm:"type:numeric"`

	Notes      string
	AdminNotes string

	Status          string `gorm:"index"`
	RejectionReason string

	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewedByName string

	SubmittedAt *time.Time
	ReviewedAt  *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time

	StatusUpdates []StatusUpdateDTO `gorm:"foreignKey:DeclarationID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "declarations".
func (DeclarationDTO) TableName() string {
	return "declarations"
}

// StatusUpdateDTO is one row of a declaration's status history.
type StatusUpdateDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeclarationID uuid.UUID `gorm:"type:uuid;index"`
	Status        string
	Note          string
	UpdatedBy     uuid.UUID `gorm:"type:uuid"`
	UpdatedByName string
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "declaration_status_updates".
func (StatusUpdateDTO) TableName() string {
	return "declaration_status_updates"
}

func fromDomain(aggregate *declaration.Declaration) DeclarationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	var reviewedBy *uuid.UUID
	if id := aggregate.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	updates := make([]StatusUpdateDTO, 0, len(aggregate.StatusUpdates()))
	for _, u := range aggregate.StatusUpdates() {
		updates = append(updates, StatusUpdateDTO{
			ID:            u.ID().Bytes(),
			DeclarationID: aggregate.ID().Bytes(),
			Status:        u.Status().String(),
			Note:          u.Note(),
			UpdatedBy:     u.UpdatedBy().Bytes(),
			UpdatedByName: u.UpdatedByName(),
			CreatedAt:     u.CreatedAt(),
		})
	}

	passport := aggregate.Passport()
	return DeclarationDTO{
		ID:                       aggregate.ID().Bytes(),
		Number:                   aggregate.Number().String(),
		CustomerID:               aggregate.CustomerID().Bytes(),
		OrderID:                  orderID,
		DeclarationType:          aggregate.DeclarationType().String(),
		PassportSeries:           passport.Series(),
		PassportNumber:           passport.Number(),
		PassportIssueDate:        passport.IssueDate(),
		PassportExpiryDate:       passport.ExpiryDate(),
		PassportIssuingAuthority: passport.IssuingAuthority(),
		ContactName:              aggregate.ContactName(),
		ContactPhone:             aggregate.ContactPhone(),
		ContactEmail:             aggregate.ContactEmail(),
		DeliveryAddress:          aggregate.DeliveryAddress(),
		DeliveryCountry:          aggregate.DeliveryCountry(),
		DeliveryCity:             aggregate.DeliveryCity(),
		ProductName:              aggregate.ProductName(),
		ProductDescription:       aggregate.ProductDescription(),
		ProductQuantity:          aggregate.ProductQuantity(),
		ProductUnit:              aggregate.ProductUnit(),
		ProductValue:             aggregate.ProductValue(),
		Currency:                 aggregate.Currency(),
		CustomsCode:              aggregate.CustomsCode(),
		CustomsValue:             aggregate.CustomsValue(),
		CustomsDuty:              aggregate.CustomsDuty(),
		Notes:                    aggregate.Notes(),
		AdminNotes:               aggregate.AdminNotes(),
		Status:                   aggregate.Status().String(),
		RejectionReason:          aggregate.RejectionReason(),
		ReviewedBy:               reviewedBy,
		ReviewedByName:           aggregate.ReviewedByName(),
		SubmittedAt:              aggregate.SubmittedAt(),
		ReviewedAt:               aggregate.ReviewedAt(),
		CompletedAt:              aggregate.CompletedAt(),
		CreatedAt:                aggregate.CreatedAt(),
		StatusUpdates:            updates,
	}
}

func toDomain(dto DeclarationDTO) (*declaration.Declaration, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.BusinessNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rID, reviewErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if reviewErr != nil {
			return nil, reviewErr
		}
		reviewedBy = &rID
	}

	passport, err := kernel.NewPassport(
		dto.PassportSeries,
		dto.PassportNumber,
		dto.PassportIssueDate,
		dto.PassportExpiryDate,
		dto.PassportIssuingAuthority,
	)
	if err != nil {
		return nil, err
	}

	updates := make([]*declaration.StatusUpdate, 0, len(dto.StatusUpdates))
	for _, u := range dto.StatusUpdates {
		updateID, updateErr := kernel.UUIDFromBytes(u.ID[:])
		if updateErr != nil {
			return nil, updateErr
		}
		updatedBy, updateErr := kernel.UUIDFromBytes(u.UpdatedBy[:])
		if updateErr != nil {
			return nil, updateErr
		}
		updates = append(updates, declaration.RestoreStatusUpdate(
			updateID,
			declaration.Status(u.Status),
			u.Note,
			updatedBy,
			u.UpdatedByName,
			u.CreatedAt,
		))
	}

	return declaration.RestoreDeclaration(declaration.RestoreDeclarationParams{
		NewDeclarationParams: declaration.NewDeclarationParams{
			ID:                 id,
			CustomerID:         customerID,
			OrderID:            orderID,
			DeclarationType:    declaration.Type(dto.DeclarationType),
			Passport:           passport,
			ContactName:        dto.ContactName,
			ContactPhone:       dto.ContactPhone,
			ContactEmail:       dto.ContactEmail,
			DeliveryAddress:    dto.DeliveryAddress,
			DeliveryCountry:    dto.DeliveryCountry,
			DeliveryCity:       dto.DeliveryCity,
			ProductName:        dto.ProductName,
			ProductDescription: dto.ProductDescription,
			ProductQuantity:    dto.ProductQuantity,
			ProductUnit:        dto.ProductUnit,
			ProductValue:       dto.ProductValue,
			Currency:           dto.Currency,
			Notes:              dto.Notes,
		},
		Number:          number,
		CustomsCode:     dto.CustomsCode,
		CustomsValue:    dto.CustomsValue,
		CustomsDuty:     dto.CustomsDuty,
		AdminNotes:      dto.AdminNotes,
		Status:          declaration.Status(dto.Status),
		RejectionReason: dto.RejectionReason,
		ReviewedBy:      reviewedBy,
		ReviewedByName:  dto.ReviewedByName,
		SubmittedAt:     dto.SubmittedAt,
		ReviewedAt:      dto.ReviewedAt,
		CompletedAt:     dto.CompletedAt,
		CreatedAt:       dto.CreatedAt,
		StatusUpdates:   updates,
	})
}
