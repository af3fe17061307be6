package order

import (
	"errors"
	"fmt"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	minQuantity = 1
	maxQuantity = 10000
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a forwarded parcel. It owns two independent
// state machines (processing status and delivery status) and an append-only
// history of status updates that is persisted together with the order.
//
// The total price is always quantity times unit price. It is computed at
// construction and never accepted from the outside.
type Order struct {
	guard guard.ConstructorGuard

	id         kernel.UUID
	number     kernel.BusinessNumber
	customerID kernel.UUID

	productName        string
	productDescription string
	quantity           int
	unitPrice          decimal.Decimal
	totalPrice         decimal.Decimal

	status         Status
	deliveryStatus DeliveryStatus

	trackingNumber string
	trackingURL    string

	deliveryAddress string
	deliveryPhone   string
	deliveryNotes   string

	orderDate         time.Time
	estimatedDelivery *time.Time
	actualDelivery    *time.Time

	adminNotes string

	statusUpdates []*StatusUpdate
}

// NewOrder creates a pending order for a customer. A business number is
// generated immediately; the repository regenerates it on a uniqueness
// collision before the first insert commits.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	deliveryAddress string,
) (*Order, error) {
	number, err := kernel.NewBusinessNumber("ORD")
	if err != nil {
		return nil, err
	}

	order := &Order{
		guard:          guard.NewConstructorGuard(),
		number:         number,
		status:         StatusPending,
		deliveryStatus: DeliveryPending,
		orderDate:      time.Now().UTC(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setProductName(productName),
		order.setQuantity(quantity),
		order.setUnitPrice(unitPrice),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	order.totalPrice = order.unitPrice.Mul(decimal.NewFromInt(int64(order.quantity)))
	return order, nil
}

// RestoreOrderParams carries the persisted state of an order.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Number             kernel.BusinessNumber
	CustomerID         kernel.UUID
	ProductName        string
	ProductDescription string
	Quantity           int
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.Decimal
	Status             Status
	DeliveryStatus     DeliveryStatus
	TrackingNumber     string
	TrackingURL        string
	DeliveryAddress    string
	DeliveryPhone      string
	DeliveryNotes      string
	OrderDate          time.Time
	EstimatedDelivery  *time.Time
	ActualDelivery     *time.Time
	AdminNotes         string
	StatusUpdates      []*StatusUpdate
}

// RestoreOrder recreates an order from persistence without re-running the
// creation rules. Statuses are still validated.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Number.Validate(),
		params.CustomerID.Validate(),
		params.Status.Validate(),
		params.DeliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		guard:              guard.NewConstructorGuard(),
		id:                 params.ID,
		number:             params.Number,
		customerID:         params.CustomerID,
		productName:        params.ProductName,
		productDescription: params.ProductDescription,
		quantity:           params.Quantity,
		unitPrice:          params.UnitPrice,
		totalPrice:         params.TotalPrice,
		status:             params.Status,
		deliveryStatus:     params.DeliveryStatus,
		trackingNumber:     params.TrackingNumber,
		trackingURL:        params.TrackingURL,
		deliveryAddress:    params.DeliveryAddress,
		deliveryPhone:      params.DeliveryPhone,
		deliveryNotes:      params.DeliveryNotes,
		orderDate:          params.OrderDate,
		estimatedDelivery:  params.EstimatedDelivery,
		actualDelivery:     params.ActualDelivery,
		adminNotes:         params.AdminNotes,
		statusUpdates:      params.StatusUpdates,
	}, nil
}

// Validate ensures the order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) Number() kernel.BusinessNumber  { return o.number }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) ProductName() string            { return o.productName }
func (o *Order) ProductDescription() string     { return o.productDescription }
func (o *Order) Quantity() int                  { return o.quantity }
func (o *Order) UnitPrice() decimal.Decimal     { return o.unitPrice }
func (o *Order) TotalPrice() decimal.Decimal    { return o.totalPrice }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }
func (o *Order) TrackingNumber() string         { return o.trackingNumber }
func (o *Order) TrackingURL() string            { return o.trackingURL }
func (o *Order) DeliveryAddress() string        { return o.deliveryAddress }
func (o *Order) DeliveryPhone() string          { return o.deliveryPhone }
func (o *Order) DeliveryNotes() string          { return o.deliveryNotes }
func (o *Order) OrderDate() time.Time           { return o.orderDate }
func (o *Order) EstimatedDelivery() *time.Time  { return o.estimatedDelivery }
func (o *Order) ActualDelivery() *time.Time     { return o.actualDelivery }
func (o *Order) AdminNotes() string             { return o.adminNotes }

// StatusUpdates returns the append-only history, oldest first.
func (o *Order) StatusUpdates() []*StatusUpdate {
	return o.statusUpdates
}

// RegenerateNumber replaces the business number with a fresh one. The
// repository calls this when the first insert hits a uniqueness collision.
func (o *Order) RegenerateNumber() error {
	number, err := kernel.NewBusinessNumber("ORD")
	if err != nil {
		return err
	}
	o.number = number
	return nil
}

// ChangeStatus moves the order to the next processing status. Only staff may
// drive the processing machine; customers cancel through Cancel.
func (o *Order) ChangeStatus(actor kernel.Actor, next Status, note string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("change order status")
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendStatusUpdate(actor, newStatus.String(), note)
	return nil
}

// Cancel moves the order to cancelled. Both the owner and staff may cancel,
// but only while the order is pending or processing.
func (o *Order) Cancel(actor kernel.Actor, note string) error {
	if !actor.CanActOn(o.customerID) {
		return errs.NewForbiddenError("cancel order")
	}

	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendStatusUpdate(actor, newStatus.String(), note)
	return nil
}

// ChangeDeliveryStatus moves the parcel along the delivery machine. The first
// arrival into delivered stamps the actual delivery time; later restores of
// the aggregate never overwrite it.
func (o *Order) ChangeDeliveryStatus(actor kernel.Actor, next DeliveryStatus, note string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("change delivery status")
	}

	newStatus, err := o.deliveryStatus.TransitionTo(next)
	if err != nil {
		return err
	}

	o.deliveryStatus = newStatus
	if newStatus == DeliveryDelivered && o.actualDelivery == nil {
		now := time.Now().UTC()
		o.actualDelivery = &now
	}
	o.appendStatusUpdate(actor, newStatus.String(), note)
	return nil
}

// SetTracking records the carrier tracking number and URL. Staff only.
func (o *Order) SetTracking(actor kernel.Actor, number, url string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("set tracking")
	}
	if number == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	o.trackingNumber = number
	o.trackingURL = url
	return nil
}

// SetEstimatedDelivery records the promised delivery date. Staff only.
func (o *Order) SetEstimatedDelivery(actor kernel.Actor, estimated time.Time) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("set estimated delivery")
	}
	if estimated.IsZero() {
		return errs.NewValueIsRequiredError("estimated delivery")
	}

	o.estimatedDelivery = &estimated
	return nil
}

// SetAdminNotes replaces the internal staff notes. Staff only.
func (o *Order) SetAdminNotes(actor kernel.Actor, notes string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("set admin notes")
	}

	o.adminNotes = notes
	return nil
}

// SetProductDescription updates the free-form product description.
func (o *Order) SetProductDescription(description string) {
	o.productDescription = description
}

// UpdateDeliveryDetails updates the destination contact fields. Allowed only
// while the order is still pending.
func (o *Order) UpdateDeliveryDetails(address, phone, notes string) error {
	if o.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("delivery details are frozen once the order is %s", o.status))
	}
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	o.deliveryAddress = address
	o.deliveryPhone = phone
	o.deliveryNotes = notes
	return nil
}

func (o *Order) appendStatusUpdate(actor kernel.Actor, newStatus, note string) {
	if note == "" {
		note = fmt.Sprintf("Status changed to %s by %s", newStatus, actor.DisplayName())
	}
	o.statusUpdates = append(o.statusUpdates, newStatusUpdate(o, actor, note))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	o.productName = productName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < minQuantity || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, minQuantity, maxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price", fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	o.unitPrice = unitPrice
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}
