package declaration

import (
	"time"

	"brokerage/internal/core/domain/model/kernel"
)

// StatusUpdate is an immutable history record appended on every committed
// status change of a declaration.
type StatusUpdate struct {
	id            kernel.UUID
	status        Status
	note          string
	updatedBy     kernel.UUID
	updatedByName string
	createdAt     time.Time
}

func newStatusUpdate(d *Declaration, actor kernel.Actor, note string) *StatusUpdate {
	return &StatusUpdate{
		id:            kernel.NewUUID(),
		status:        d.status,
		note:          note,
		updatedBy:     actor.ID(),
		updatedByName: actor.DisplayName(),
		createdAt:     time.Now().UTC(),
	}
}

// RestoreStatusUpdate recreates a history record from persistence.
func RestoreStatusUpdate(
	id kernel.UUID,
	status Status,
	note string,
	updatedBy kernel.UUID,
	updatedByName string,
	createdAt time.Time,
) *StatusUpdate {
	return &StatusUpdate{
		id:            id,
		status:        status,
		note:          note,
		updatedBy:     updatedBy,
		updatedByName: updatedByName,
		createdAt:     createdAt,
	}
}

func (u *StatusUpdate) ID() kernel.UUID        { return u.id }
func (u *StatusUpdate) Status() Status         { return u.status }
func (u *StatusUpdate) Note() string           { return u.note }
func (u *StatusUpdate) UpdatedBy() kernel.UUID { return u.updatedBy }
func (u *StatusUpdate) UpdatedByName() string  { return u.updatedByName }
func (u *StatusUpdate) CreatedAt() time.Time   { return u.createdAt }
