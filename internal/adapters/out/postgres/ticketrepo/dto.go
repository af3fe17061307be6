// Package ticketrepo persists support ticket aggregates together with their
// conversation threads. Ticket numbers come from a database sequence, so Add
// works in two steps within the caller's transaction: insert the row, read
// the sequence value back, then stamp the number.
package ticketrepo

import (
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketDTO is the database representation of a ticket aggregate. Seq is a
// bigserial column whose value feeds the sequenced business number.
type TicketDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex"`
	Number     *string   `gorm:"uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`

	Subject     string
	Description string
	TicketType  string
	Priority    string
	Status      string `gorm:"index"`

	AssignedTo *uuid.UUID `gorm:"type:uuid;index"`

	OrderID       *uuid.UUID `gorm:"type:uuid"`
	DeclarationID *uuid.UUID `gorm:"type:uuid"`

	ResolvedAt *time.Time
	ClosedAt   *time.Time
	CreatedAt  time.Time

	Messages []MessageDTO `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "tickets".
func (TicketDTO) TableName() string {
	return "tickets"
}

// MessageDTO is one entry of a ticket's conversation thread.
type MessageDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TicketID   uuid.UUID  `gorm:"type:uuid;index"`
	AuthorKind string
	AuthorID   *uuid.UUID `gorm:"type:uuid"`
	AuthorName string
	Body       string
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "ticket_messages".
func (MessageDTO) TableName() string {
	return "ticket_messages"
}

func fromDomain(aggregate *ticket.Ticket) TicketDTO {
	var number *string
	if n := aggregate.Number(); n != nil {
		raw := n.String()
		number = &raw
	}

	toPtr := func(id *kernel.UUID) *uuid.UUID {
		if id == nil {
			return nil
		}
		raw := id.Bytes()
		return &raw
	}

	messages := make([]MessageDTO, 0, len(aggregate.Messages()))
	for _, m := range aggregate.Messages() {
		messages = append(messages, MessageDTO{
			ID:         m.ID().Bytes(),
			TicketID:   aggregate.ID().Bytes(),
			AuthorKind: string(m.AuthorKind()),
			AuthorID:   toPtr(m.AuthorID()),
			AuthorName: m.AuthorName(),
			Body:       m.Body(),
			CreatedAt:  m.CreatedAt(),
		})
	}

	return TicketDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        number,
		CustomerID:    aggregate.CustomerID().Bytes(),
		Subject:       aggregate.Subject(),
		Description:   aggregate.Description(),
		TicketType:    aggregate.TicketType().String(),
		Priority:      aggregate.Priority().String(),
		Status:        aggregate.Status().String(),
		AssignedTo:    toPtr(aggregate.AssignedTo()),
		OrderID:       toPtr(aggregate.OrderID()),
		DeclarationID: toPtr(aggregate.DeclarationID()),
		ResolvedAt:    aggregate.ResolvedAt(),
		ClosedAt:      aggregate.ClosedAt(),
		CreatedAt:     aggregate.CreatedAt(),
		Messages:      messages,
	}
}

func toDomain(dto TicketDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var number *kernel.BusinessNumber
	if dto.Number != nil {
		n, numberErr := kernel.BusinessNumberFromString(*dto.Number)
		if numberErr != nil {
			return nil, numberErr
		}
		number = &n
	}

	toKernel := func(id *uuid.UUID) (*kernel.UUID, error) {
		if id == nil {
			return nil, nil
		}
		k, err := kernel.UUIDFromBytes((*id)[:])
		if err != nil {
			return nil, err
		}
		return &k, nil
	}

	assignedTo, err := toKernel(dto.AssignedTo)
	if err != nil {
		return nil, err
	}
	orderID, err := toKernel(dto.OrderID)
	if err != nil {
		return nil, err
	}
	declarationID, err := toKernel(dto.DeclarationID)
	if err != nil {
		return nil, err
	}

	messages := make([]*ticket.Message, 0, len(dto.Messages))
	for _, m := range dto.Messages {
		messageID, messageErr := kernel.UUIDFromBytes(m.ID[:])
		if messageErr != nil {
			return nil, messageErr
		}
		authorID, messageErr := toKernel(m.AuthorID)
		if messageErr != nil {
			return nil, messageErr
		}
		messages = append(messages, ticket.RestoreMessage(
			messageID,
			ticket.AuthorKind(m.AuthorKind),
			authorID,
			m.AuthorName,
			m.Body,
			m.CreatedAt,
		))
	}

	return ticket.RestoreTicket(ticket.RestoreTicketParams{
		ID:            id,
		Number:        number,
		CustomerID:    customerID,
		Subject:       dto.Subject,
		Description:   dto.Description,
		TicketType:    ticket.Type(dto.TicketType),
		Priority:      ticket.Priority(dto.Priority),
		Status:        ticket.Status(dto.Status),
		AssignedTo:    assignedTo,
		OrderID:       orderID,
		DeclarationID: declarationID,
		ResolvedAt:    dto.ResolvedAt,
		ClosedAt:      dto.ClosedAt,
		CreatedAt:     dto.CreatedAt,
		Messages:      messages,
	})
}
