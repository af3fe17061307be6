package order

import (
	"time"

	"brokerage/internal/core/domain/model/kernel"
)

// StatusUpdate is an immutable history record appended whenever the order's
// status or delivery status changes. It snapshots both fields so the timeline
// can be rendered without replaying transitions.
type StatusUpdate struct {
	id             kernel.UUID
	status         Status
	deliveryStatus DeliveryStatus
	note           string
	updatedBy      kernel.UUID
	updatedByName  string
	createdAt      time.Time
}

func newStatusUpdate(o *Order, actor kernel.Actor, note string) *StatusUpdate {
	return &StatusUpdate{
		id:             kernel.NewUUID(),
		status:         o.status,
		deliveryStatus: o.deliveryStatus,
		note:           note,
		updatedBy:      actor.ID(),
		updatedByName:  actor.DisplayName(),
		createdAt:      time.Now().UTC(),
	}
}

// RestoreStatusUpdate recreates a history record from persistence.
func RestoreStatusUpdate(
	id kernel.UUID,
	status Status,
	deliveryStatus DeliveryStatus,
	note string,
	updatedBy kernel.UUID,
	updatedByName string,
	createdAt time.Time,
) *StatusUpdate {
	return &StatusUpdate{
		id:             id,
		status:         status,
		deliveryStatus: deliveryStatus,
		note:           note,
		updatedBy:      updatedBy,
		updatedByName:  updatedByName,
		createdAt:      createdAt,
	}
}

func (u *StatusUpdate) ID() kernel.UUID                { return u.id }
func (u *StatusUpdate) Status() Status                 { return u.status }
func (u *StatusUpdate) DeliveryStatus() DeliveryStatus { return u.deliveryStatus }
func (u *StatusUpdate) Note() string                   { return u.note }
func (u *StatusUpdate) UpdatedBy() kernel.UUID         { return u.updatedBy }
func (u *StatusUpdate) UpdatedByName() string          { return u.updatedByName }
func (u *StatusUpdate) CreatedAt() time.Time           { return u.createdAt }
