package ticket

import (
	"errors"
	"fmt"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

// ErrTicketIsNotConstructed is returned when a Ticket instance was not
// created through the NewTicket or RestoreTicket factory methods.
var ErrTicketIsNotConstructed = errors.New("ticket must be created via NewTicket or RestoreTicket")

// ErrNumberAlreadyAssigned is returned when AssignNumber is called on a
// ticket that already carries a business number.
var ErrNumberAlreadyAssigned = errors.New("ticket number is already assigned")

// Ticket is the aggregate root for a customer support request. Unlike orders
// and declarations its business number depends on a database sequence, so it
// is assigned two-phase: the repository inserts the row first, reads back the
// sequence value, and calls AssignNumber inside the same transaction.
type Ticket struct {
	guard guard.ConstructorGuard

	id         kernel.UUID
	number     *kernel.BusinessNumber
	customerID kernel.UUID

	subject     string
	description string
	ticketType  Type
	priority    Priority
	status      Status

	assignedTo *kernel.UUID

	orderID       *kernel.UUID
	declarationID *kernel.UUID

	resolvedAt *time.Time
	closedAt   *time.Time
	createdAt  time.Time

	messages []*Message
}

// NewTicket opens a ticket for a customer. The first message of the thread is
// the description itself, authored by the customer.
func NewTicket(
	id kernel.UUID,
	customerID kernel.UUID,
	subject string,
	description string,
	ticketType Type,
	priority Priority,
	orderID *kernel.UUID,
	declarationID *kernel.UUID,
) (*Ticket, error) {
	t := &Ticket{
		guard:     guard.NewConstructorGuard(),
		status:    StatusOpen,
		createdAt: time.Now().UTC(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCustomerID(customerID),
		t.setSubject(subject),
		t.setDescription(description),
		t.setType(ticketType),
		t.setPriority(priority),
		t.setOrderID(orderID),
		t.setDeclarationID(declarationID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTicketParams carries the persisted state of a ticket.
type RestoreTicketParams struct {
	ID            kernel.UUID
	Number        *kernel.BusinessNumber
	CustomerID    kernel.UUID
	Subject       string
	Description   string
	TicketType    Type
	Priority      Priority
	Status        Status
	AssignedTo    *kernel.UUID
	OrderID       *kernel.UUID
	DeclarationID *kernel.UUID
	ResolvedAt    *time.Time
	ClosedAt      *time.Time
	CreatedAt     time.Time
	Messages      []*Message
}

// RestoreTicket recreates a ticket from persistence without re-running the
// creation rules. Identity and status are still validated.
func RestoreTicket(params RestoreTicketParams) (*Ticket, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.CustomerID.Validate(),
		params.Status.Validate(),
		params.TicketType.Validate(),
		params.Priority.Validate(),
	); err != nil {
		return nil, err
	}

	return &Ticket{
		guard:         guard.NewConstructorGuard(),
		id:            params.ID,
		number:        params.Number,
		customerID:    params.CustomerID,
		subject:       params.Subject,
		description:   params.Description,
		ticketType:    params.TicketType,
		priority:      params.Priority,
		status:        params.Status,
		assignedTo:    params.AssignedTo,
		orderID:       params.OrderID,
		declarationID: params.DeclarationID,
		resolvedAt:    params.ResolvedAt,
		closedAt:      params.ClosedAt,
		createdAt:     params.CreatedAt,
		messages:      params.Messages,
	}, nil
}

// Validate ensures the ticket was created through a factory method.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

// IsEqual compares two tickets by identifier.
func (t *Ticket) IsEqual(other *Ticket) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Ticket) ID() kernel.UUID                { return t.id }
func (t *Ticket) Number() *kernel.BusinessNumber { return t.number }
func (t *Ticket) CustomerID() kernel.UUID        { return t.customerID }
func (t *Ticket) Subject() string                { return t.subject }
func (t *Ticket) Description() string            { return t.description }
func (t *Ticket) TicketType() Type               { return t.ticketType }
func (t *Ticket) Priority() Priority             { return t.priority }
func (t *Ticket) Status() Status                 { return t.status }
func (t *Ticket) AssignedTo() *kernel.UUID       { return t.assignedTo }
func (t *Ticket) OrderID() *kernel.UUID          { return t.orderID }
func (t *Ticket) DeclarationID() *kernel.UUID    { return t.declarationID }
func (t *Ticket) ResolvedAt() *time.Time         { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time           { return t.closedAt }
func (t *Ticket) CreatedAt() time.Time           { return t.createdAt }

// Messages returns the conversation thread, oldest first.
func (t *Ticket) Messages() []*Message {
	return t.messages
}

// AssignNumber stamps the sequenced business number exactly once. The
// repository calls it after the first insert yields the sequence value.
func (t *Ticket) AssignNumber(seq int64) error {
	if t.number != nil {
		return ErrNumberAlreadyAssigned
	}

	number, err := kernel.NewSequencedBusinessNumber("TKT", seq)
	if err != nil {
		return err
	}
	t.number = &number
	return nil
}

// AddMessage appends a conversation message. The owner and staff may write;
// the author kind is derived from the actor.
func (t *Ticket) AddMessage(actor kernel.Actor, body string) error {
	if !actor.CanActOn(t.customerID) {
		return errs.NewForbiddenError("post ticket message")
	}
	if body == "" {
		return errs.NewValueIsRequiredError("message body")
	}
	if t.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(t.status.String())
	}

	kind := AuthorCustomer
	if actor.IsStaff() {
		kind = AuthorStaff
	}
	t.messages = append(t.messages, newMessage(actor, kind, body))
	return nil
}

// ChangeStatus moves the ticket between the non-terminal states. Staff only;
// customers end the conversation through Resolve or Close.
func (t *Ticket) ChangeStatus(actor kernel.Actor, next Status) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("change ticket status")
	}
	if next == StatusResolved || next == StatusClosed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is reached via resolve or close", next))
	}

	newStatus, err := t.status.TransitionTo(next)
	if err != nil {
		return err
	}

	t.status = newStatus
	t.messages = append(t.messages, newSystemMessage(
		fmt.Sprintf("Status changed to %s by %s", newStatus, actor.DisplayName())))
	return nil
}

// AssignTo hands the ticket to a staff member and moves an open ticket into
// in_progress. Staff only.
func (t *Ticket) AssignTo(actor kernel.Actor, staffID kernel.UUID) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("assign ticket")
	}
	if err := staffID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("staff id", err)
	}
	if t.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(t.status.String())
	}

	t.assignedTo = &staffID
	if t.status == StatusOpen {
		t.status = StatusInProgress
	}
	return nil
}

// SetPriority relabels the ticket's urgency. Staff only.
func (t *Ticket) SetPriority(actor kernel.Actor, priority Priority) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("set ticket priority")
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	t.priority = priority
	return nil
}

// Resolve ends the ticket as answered. The owner and staff may resolve. The
// first resolution stamps resolvedAt; a system message records the change.
func (t *Ticket) Resolve(actor kernel.Actor, note string) error {
	return t.finish(actor, StatusResolved, note, "resolve ticket")
}

// Close ends the ticket without an answer. The owner and staff may close.
// The first close stamps closedAt; a system message records the change.
func (t *Ticket) Close(actor kernel.Actor, note string) error {
	return t.finish(actor, StatusClosed, note, "close ticket")
}

func (t *Ticket) finish(actor kernel.Actor, terminal Status, note, action string) error {
	if !actor.CanActOn(t.customerID) {
		return errs.NewForbiddenError(action)
	}

	newStatus, err := t.status.TransitionTo(terminal)
	if err != nil {
		return err
	}

	t.status = newStatus
	now := time.Now().UTC()
	switch terminal {
	case StatusResolved:
		if t.resolvedAt == nil {
			t.resolvedAt = &now
		}
	case StatusClosed:
		if t.closedAt == nil {
			t.closedAt = &now
		}
	}

	if note == "" {
		note = fmt.Sprintf("Ticket %s by %s", newStatus, actor.DisplayName())
	}
	t.messages = append(t.messages, newSystemMessage(note))
	return nil
}

func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Ticket) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	t.customerID = customerID
	return nil
}

func (t *Ticket) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	t.subject = subject
	return nil
}

func (t *Ticket) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	t.description = description
	return nil
}

func (t *Ticket) setType(ticketType Type) error {
	if err := ticketType.Validate(); err != nil {
		return err
	}
	t.ticketType = ticketType
	return nil
}

func (t *Ticket) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *Ticket) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
	}
	t.orderID = orderID
	return nil
}

func (t *Ticket) setDeclarationID(declarationID *kernel.UUID) error {
	if declarationID != nil {
		if err := declarationID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("declaration id", err)
		}
	}
	t.declarationID = declarationID
	return nil
}
