package declaration

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrDeclarationIsNotConstructed is returned when a Declaration instance was
// not created through the NewDeclaration or RestoreDeclaration factory methods.
var ErrDeclarationIsNotConstructed = errors.New("declaration must be created via NewDeclaration or RestoreDeclaration")

// Declaration is the aggregate root for a customs declaration. It moves
// through a staff review workflow and stamps submittedAt, reviewedAt and
// completedAt exactly once, on the first transition that reaches them.
// The reviewer identity is frozen by the first approve or reject.
type Declaration struct {
	guard guard.ConstructorGuard

	id         kernel.UUID
	number     kernel.BusinessNumber
	customerID kernel.UUID
	orderID    *kernel.UUID

	declarationType Type
	passport        kernel.Passport

	contactName  string
	contactPhone string
	contactEmail string

	deliveryAddress string
	deliveryCountry string
	deliveryCity    string

	productName        string
	productDescription string
	productQuantity    int
	productUnit        string
	productValue       decimal.Decimal
	currency           string

	customsCode  string
	customsValue decimal.Decimal
	customsDuty  decimal.Decimal

	notes      string
	adminNotes string

	status          Status
	rejectionReason string

	reviewedBy     *kernel.UUID
	reviewedByName string

	submittedAt *time.Time
	reviewedAt  *time.Time
	completedAt *time.Time
	createdAt   time.Time

	statusUpdates []*StatusUpdate
}

// NewDeclarationParams carries the customer-supplied fields of a new
// declaration. Customs fields are staff-only and set later via SetCustoms.
type NewDeclarationParams struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	OrderID         *kernel.UUID
	DeclarationType Type
	Passport        kernel.Passport

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
	ProductValue       decimal.Decimal
	Currency           string

	Notes string
}

// NewDeclaration creates a draft declaration. A business number is generated
// immediately; the repository regenerates it on a uniqueness collision.
func NewDeclaration(params NewDeclarationParams) (*Declaration, error) {
	number, err := kernel.NewBusinessNumber("DEC")
	if err != nil {
		return nil, err
	}

	d := &Declaration{
		guard:     guard.NewConstructorGuard(),
		number:    number,
		status:    StatusDraft,
		createdAt: time.Now().UTC(),
	}

	if err := errors.Join(
		d.setID(params.ID),
		d.setCustomerID(params.CustomerID),
		d.setOrderID(params.OrderID),
		d.setType(params.DeclarationType),
		d.setPassport(params.Passport),
		d.setContact(params.ContactName, params.ContactPhone, params.ContactEmail),
		d.setDelivery(params.DeliveryAddress, params.DeliveryCountry, params.DeliveryCity),
		d.setProduct(params.ProductName, params.ProductDescription, params.ProductQuantity,
			params.ProductUnit, params.ProductValue, params.Currency),
	); err != nil {
		return nil, err
	}

	d.notes = params.Notes
	return d, nil
}

// RestoreDeclarationParams carries the persisted state of a declaration.
type RestoreDeclarationParams struct {
	NewDeclarationParams

	Number          kernel.BusinessNumber
	CustomsCode     string
	CustomsValue    decimal.Decimal
	CustomsDuty     decimal.Decimal
	AdminNotes      string
	Status          Status
	RejectionReason string
	ReviewedBy      *kernel.UUID
	ReviewedByName  string
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
	StatusUpdates   []*StatusUpdate
}

// RestoreDeclaration recreates a declaration from persistence without
// re-running the creation rules. Identity and status are still validated.
func RestoreDeclaration(params RestoreDeclarationParams) (*Declaration, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Number.Validate(),
		params.CustomerID.Validate(),
		params.Status.Validate(),
		params.DeclarationType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Declaration{
		guard:              guard.NewConstructorGuard(),
		id:                 params.ID,
		number:             params.Number,
		customerID:         params.CustomerID,
		orderID:            params.OrderID,
		declarationType:    params.DeclarationType,
		passport:           params.Passport,
		contactName:        params.ContactName,
		contactPhone:       params.ContactPhone,
		contactEmail:       params.ContactEmail,
		deliveryAddress:    params.DeliveryAddress,
		deliveryCountry:    params.DeliveryCountry,
		deliveryCity:       params.DeliveryCity,
		productName:        params.ProductName,
		productDescription: params.ProductDescription,
		productQuantity:    params.ProductQuantity,
		productUnit:        params.ProductUnit,
		productValue:       params.ProductValue,
		currency:           params.Currency,
		customsCode:        params.CustomsCode,
		customsValue:       params.CustomsValue,
		customsDuty:        params.CustomsDuty,
		notes:              params.Notes,
		adminNotes:         params.AdminNotes,
		status:             params.Status,
		rejectionReason:    params.RejectionReason,
		reviewedBy:         params.ReviewedBy,
		reviewedByName:     params.ReviewedByName,
		submittedAt:        params.SubmittedAt,
		reviewedAt:         params.ReviewedAt,
		completedAt:        params.CompletedAt,
		createdAt:          params.CreatedAt,
		statusUpdates:      params.StatusUpdates,
	}, nil
}

// Validate ensures the declaration was created through a factory method.
func (d *Declaration) Validate() error {
	if d == nil {
		return ErrDeclarationIsNotConstructed
	}
	return d.guard.Validate(ErrDeclarationIsNotConstructed)
}

// IsEqual compares two declarations by identifier.
func (d *Declaration) IsEqual(other *Declaration) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Declaration) ID() kernel.UUID               { return d.id }
func (d *Declaration) Number() kernel.BusinessNumber { return d.number }
func (d *Declaration) CustomerID() kernel.UUID       { return d.customerID }
func (d *Declaration) OrderID() *kernel.UUID         { return d.orderID }
func (d *Declaration) DeclarationType() Type         { return d.declarationType }
func (d *Declaration) Passport() kernel.Passport     { return d.passport }
func (d *Declaration) ContactName() string           { return d.contactName }
func (d *Declaration) ContactPhone() string          { return d.contactPhone }
func (d *Declaration) ContactEmail() string          { return d.contactEmail }
func (d *Declaration) DeliveryAddress() string       { return d.deliveryAddress }
func (d *Declaration) DeliveryCountry() string       { return d.deliveryCountry }
func (d *Declaration) DeliveryCity() string          { return d.deliveryCity }
func (d *Declaration) ProductName() string           { return d.productName }
func (d *Declaration) ProductDescription() string    { return d.productDescription }
func (d *Declaration) ProductQuantity() int          { return d.productQuantity }
func (d *Declaration) ProductUnit() string           { return d.productUnit }
func (d *Declaration) ProductValue() decimal.Decimal { return d.productValue }
func (d *Declaration) Currency() string              { return d.currency }
func (d *Declaration) CustomsCode() string           { return d.customsCode }
func (d *Declaration) CustomsValue() decimal.Decimal { return d.customsValue }
func (d *Declaration) CustomsDuty() decimal.Decimal  { return d.customsDuty }
func (d *Declaration) Notes() string                 { return d.notes }
func (d *Declaration) AdminNotes() string            { return d.adminNotes }
func (d *Declaration) Status() Status                { return d.status }
func (d *Declaration) RejectionReason() string       { return d.rejectionReason }
func (d *Declaration) ReviewedBy() *kernel.UUID      { return d.reviewedBy }
func (d *Declaration) ReviewedByName() string        { return d.reviewedByName }
func (d *Declaration) SubmittedAt() *time.Time       { return d.submittedAt }
func (d *Declaration) ReviewedAt() *time.Time        { return d.reviewedAt }
func (d *Declaration) CompletedAt() *time.Time       { return d.completedAt }
func (d *Declaration) CreatedAt() time.Time          { return d.createdAt }

// StatusUpdates returns the append-only history, oldest first.
func (d *Declaration) StatusUpdates() []*StatusUpdate {
	return d.statusUpdates
}

// RegenerateNumber replaces the business number with a fresh one. The
// repository calls this when the first insert hits a uniqueness collision.
func (d *Declaration) RegenerateNumber() error {
	number, err := kernel.NewBusinessNumber("DEC")
	if err != nil {
		return err
	}
	d.number = number
	return nil
}

// Submit hands the draft to staff for review. The owner or staff may submit.
// The first submission stamps submittedAt; the stamp is never overwritten.
func (d *Declaration) Submit(actor kernel.Actor) error {
	if !actor.CanActOn(d.customerID) {
		return errs.NewForbiddenError("submit declaration")
	}

	newStatus, err := d.status.TransitionTo(StatusSubmitted)
	if err != nil {
		return err
	}

	d.status = newStatus
	if d.submittedAt == nil {
		now := time.Now().UTC()
		d.submittedAt = &now
	}
	d.appendStatusUpdate(actor, "")
	return nil
}

// StartReview marks the declaration as picked up by a broker. Staff only.
func (d *Declaration) StartReview(actor kernel.Actor) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("review declaration")
	}

	newStatus, err := d.status.TransitionTo(StatusUnderReview)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.appendStatusUpdate(actor, "")
	return nil
}

// Approve passes the review. Staff only. The first review decision stamps
// reviewedAt and freezes the reviewer identity.
func (d *Declaration) Approve(actor kernel.Actor) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("approve declaration")
	}

	newStatus, err := d.status.TransitionTo(StatusApproved)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.stampReview(actor)
	d.appendStatusUpdate(actor, "")
	return nil
}

// Reject fails the review with a mandatory reason. Staff only.
func (d *Declaration) Reject(actor kernel.Actor, reason string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("reject declaration")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	newStatus, err := d.status.TransitionTo(StatusRejected)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.rejectionReason = reason
	d.stampReview(actor)
	d.appendStatusUpdate(actor, fmt.Sprintf("Rejected: %s", reason))
	return nil
}

// Complete closes out the declaration after review. Staff only. The first
// completion stamps completedAt.
func (d *Declaration) Complete(actor kernel.Actor) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("complete declaration")
	}

	newStatus, err := d.status.TransitionTo(StatusCompleted)
	if err != nil {
		return err
	}

	d.status = newStatus
	if d.completedAt == nil {
		now := time.Now().UTC()
		d.completedAt = &now
	}
	d.appendStatusUpdate(actor, "")
	return nil
}

// SetCustoms records the broker's customs classification and assessed
// amounts. Staff only.
func (d *Declaration) SetCustoms(actor kernel.Actor, code string, value, duty decimal.Decimal) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("set customs details")
	}
	if code == "" {
		return errs.NewValueIsRequiredError("customs code")
	}
	if value.IsNegative() || duty.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"customs amounts", fmt.Errorf("value %s and duty %s must not be negative", value, duty))
	}

	d.customsCode = code
	d.customsValue = value
	d.customsDuty = duty
	return nil
}

// SetAdminNotes replaces the internal staff notes. Staff only.
func (d *Declaration) SetAdminNotes(actor kernel.Actor, notes string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("set admin notes")
	}

	d.adminNotes = notes
	return nil
}

// UpdateDetails replaces the customer-editable fields. Allowed only while the
// declaration is still a draft.
func (d *Declaration) UpdateDetails(params NewDeclarationParams) error {
	if d.status != StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("declaration details are frozen once the declaration is %s", d.status))
	}

	if err := errors.Join(
		d.setOrderID(params.OrderID),
		d.setType(params.DeclarationType),
		d.setPassport(params.Passport),
		d.setContact(params.ContactName, params.ContactPhone, params.ContactEmail),
		d.setDelivery(params.DeliveryAddress, params.DeliveryCountry, params.DeliveryCity),
		d.setProduct(params.ProductName, params.ProductDescription, params.ProductQuantity,
			params.ProductUnit, params.ProductValue, params.Currency),
	); err != nil {
		return err
	}

	d.notes = params.Notes
	return nil
}

func (d *Declaration) stampReview(actor kernel.Actor) {
	if d.reviewedAt != nil {
		return
	}
	now := time.Now().UTC()
	reviewer := actor.ID()
	d.reviewedAt = &now
	d.reviewedBy = &reviewer
	d.reviewedByName = actor.DisplayName()
}

func (d *Declaration) appendStatusUpdate(actor kernel.Actor, note string) {
	if note == "" {
		note = fmt.Sprintf("Status changed to %s by %s", d.status, actor.DisplayName())
	}
	d.statusUpdates = append(d.statusUpdates, newStatusUpdate(d, actor, note))
}

func (d *Declaration) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Declaration) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	d.customerID = customerID
	return nil
}

func (d *Declaration) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
	}
	d.orderID = orderID
	return nil
}

func (d *Declaration) setType(declarationType Type) error {
	if err := declarationType.Validate(); err != nil {
		return err
	}
	d.declarationType = declarationType
	return nil
}

func (d *Declaration) setPassport(passport kernel.Passport) error {
	if err := passport.Validate(); err != nil {
		return err
	}
	d.passport = passport
	return nil
}

func (d *Declaration) setContact(name, phone, email string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("contact name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("contact phone")
	}
	d.contactName = name
	d.contactPhone = phone
	d.contactEmail = email
	return nil
}

func (d *Declaration) setDelivery(address, country, city string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if country == "" {
		return errs.NewValueIsRequiredError("delivery country")
	}
	if city == "" {
		return errs.NewValueIsRequiredError("delivery city")
	}
	d.deliveryAddress = address
	d.deliveryCountry = country
	d.deliveryCity = city
	return nil
}

func (d *Declaration) setProduct(
	name, description string,
	quantity int,
	unit string,
	value decimal.Decimal,
	currency string,
) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("product quantity", quantity, 1, 100000)
	}
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"product value", fmt.Errorf("%s is not greater than 0", value))
	}
	if !currencyPattern.MatchString(currency) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	d.productName = name
	d.productDescription = description
	d.productQuantity = quantity
	d.productUnit = unit
	d.productValue = value
	d.currency = currency
	return nil
}
