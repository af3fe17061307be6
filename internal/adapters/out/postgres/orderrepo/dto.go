// Package orderrepo persists order aggregates together with their status
// history. History rows are append-only and travel in the same transaction
// as the parent order.
package orderrepo

import (
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order aggregate.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number             string    `gorm:"uniqueIndex"`
	CustomerID         uuid.UUID `gorm:"type:uuid;index"`
	ProductName        string
	ProductDescription string
	Quantity           int
	UnitPrice          decimal.Decimal `gorm:"type:numeric"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric"`
	Status             string          `gorm:"index"`
	DeliveryStatus     string
	TrackingNumber     string
	TrackingURL        string
	DeliveryAddress    string
	DeliveryPhone      string
	DeliveryNotes      string
	OrderDate          time.Time
	EstimatedDelivery  *time.Time
	ActualDelivery     *time.Time
	AdminNotes         string

	StatusUpdates []StatusUpdateDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusUpdateDTO is one row of an order's status history.
type StatusUpdateDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Status         string
	DeliveryStatus string
	Note           string
	UpdatedBy      uuid.UUID `gorm:"type:uuid"`
	UpdatedByName  string
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "order_status_updates".
func (StatusUpdateDTO) TableName() string {
	return "order_status_updates"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	updates := make([]StatusUpdateDTO, 0, len(aggregate.StatusUpdates()))
	for _, u := range aggregate.StatusUpdates() {
		updates = append(updates, StatusUpdateDTO{
			ID:             u.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			Status:         u.Status().String(),
			DeliveryStatus: u.DeliveryStatus().String(),
			Note:           u.Note(),
			UpdatedBy:      u.UpdatedBy().Bytes(),
			UpdatedByName:  u.UpdatedByName(),
			CreatedAt:      u.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Number:             aggregate.Number().String(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		ProductName:        aggregate.ProductName(),
		ProductDescription: aggregate.ProductDescription(),
		Quantity:           aggregate.Quantity(),
		UnitPrice:          aggregate.UnitPrice(),
		TotalPrice:         aggregate.TotalPrice(),
		Status:             aggregate.Status().String(),
		DeliveryStatus:     aggregate.DeliveryStatus().String(),
		TrackingNumber:     aggregate.TrackingNumber(),
		TrackingURL:        aggregate.TrackingURL(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		DeliveryPhone:      aggregate.DeliveryPhone(),
		DeliveryNotes:      aggregate.DeliveryNotes(),
		OrderDate:          aggregate.OrderDate(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		ActualDelivery:     aggregate.ActualDelivery(),
		AdminNotes:         aggregate.AdminNotes(),
		StatusUpdates:      updates,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
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

	updates := make([]*order.StatusUpdate, 0, len(dto.StatusUpdates))
	for _, u := range dto.StatusUpdates {
		updateID, updateErr := kernel.UUIDFromBytes(u.ID[:])
		if updateErr != nil {
			return nil, updateErr
		}
		updatedBy, updateErr := kernel.UUIDFromBytes(u.UpdatedBy[:])
		if updateErr != nil {
			return nil, updateErr
		}
		updates = append(updates, order.RestoreStatusUpdate(
			updateID,
			order.Status(u.Status),
			order.DeliveryStatus(u.DeliveryStatus),
			u.Note,
			updatedBy,
			u.UpdatedByName,
			u.CreatedAt,
		))
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Number:             number,
		CustomerID:         customerID,
		ProductName:        dto.ProductName,
		ProductDescription: dto.ProductDescription,
		Quantity:           dto.Quantity,
		UnitPrice:          dto.UnitPrice,
		TotalPrice:         dto.TotalPrice,
		Status:             order.Status(dto.Status),
		DeliveryStatus:     order.DeliveryStatus(dto.DeliveryStatus),
		TrackingNumber:     dto.TrackingNumber,
		TrackingURL:        dto.TrackingURL,
		DeliveryAddress:    dto.DeliveryAddress,
		DeliveryPhone:      dto.DeliveryPhone,
		DeliveryNotes:      dto.DeliveryNotes,
		OrderDate:          dto.OrderDate,
		EstimatedDelivery:  dto.EstimatedDelivery,
		ActualDelivery:     dto.ActualDelivery,
		AdminNotes:         dto.AdminNotes,
		StatusUpdates:      updates,
	})
}
