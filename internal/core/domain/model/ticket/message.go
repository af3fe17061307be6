package ticket

import (
	"time"

	"brokerage/internal/core/domain/model/kernel"
)

// AuthorKind distinguishes who wrote a ticket message. System messages are
// appended by the workflow itself and double as the ticket's status history.
type AuthorKind string

const (
	AuthorCustomer AuthorKind = "customer"
	AuthorStaff    AuthorKind = "staff"
	AuthorSystem   AuthorKind = "system"
)

// Message is an immutable entry in a ticket's conversation thread.
type Message struct {
	id         kernel.UUID
	authorKind AuthorKind
	authorID   *kernel.UUID
	authorName string
	body       string
	createdAt  time.Time
}

func newMessage(actor kernel.Actor, kind AuthorKind, body string) *Message {
	authorID := actor.ID()
	return &Message{
		id:         kernel.NewUUID(),
		authorKind: kind,
		authorID:   &authorID,
		authorName: actor.DisplayName(),
		body:       body,
		createdAt:  time.Now().UTC(),
	}
}

func newSystemMessage(body string) *Message {
	return &Message{
		id:         kernel.NewUUID(),
		authorKind: AuthorSystem,
		authorName: "system",
		body:       body,
		createdAt:  time.Now().UTC(),
	}
}

// RestoreMessage recreates a message from persistence.
func RestoreMessage(
	id kernel.UUID,
	authorKind AuthorKind,
	authorID *kernel.UUID,
	authorName string,
	body string,
	createdAt time.Time,
) *Message {
	return &Message{
		id:         id,
		authorKind: authorKind,
		authorID:   authorID,
		authorName: authorName,
		body:       body,
		createdAt:  createdAt,
	}
}

func (m *Message) ID() kernel.UUID         { return m.id }
func (m *Message) AuthorKind() AuthorKind  { return m.authorKind }
func (m *Message) AuthorID() *kernel.UUID  { return m.authorID }
func (m *Message) AuthorName() string      { return m.authorName }
func (m *Message) Body() string            { return m.body }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }
func (m *Message) IsSystem() bool          { return m.authorKind == AuthorSystem }
