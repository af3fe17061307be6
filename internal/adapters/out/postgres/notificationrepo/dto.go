// Package notificationrepo persists the notification outbox.
package notificationrepo

import (
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database representation of an outbox row.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Channel      string
	Recipient    string
	Subject      string
	Body         string
	Status       string `gorm:"index"`
	ErrorMessage string
	RelatedKind  string
	RelatedID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	SentAt       *time.Time
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var relatedID *uuid.UUID
	if id := aggregate.RelatedID(); id != nil {
		raw := id.Bytes()
		relatedID = &raw
	}

	return NotificationDTO{
		ID:           aggregate.ID().Bytes(),
		Channel:      aggregate.Channel().String(),
		Recipient:    aggregate.Recipient(),
		Subject:      aggregate.Subject(),
		Body:         aggregate.Body(),
		Status:       aggregate.Status().String(),
		ErrorMessage: aggregate.ErrorMessage(),
		RelatedKind:  string(aggregate.RelatedKind()),
		RelatedID:    relatedID,
		CreatedAt:    aggregate.CreatedAt(),
		SentAt:       aggregate.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var relatedID *kernel.UUID
	if dto.RelatedID != nil {
		rID, relatedErr := kernel.UUIDFromBytes((*dto.RelatedID)[:])
		if relatedErr != nil {
			return nil, relatedErr
		}
		relatedID = &rID
	}

	return notification.RestoreNotification(notification.RestoreNotificationParams{
		ID:           id,
		Channel:      notification.Channel(dto.Channel),
		Recipient:    dto.Recipient,
		Subject:      dto.Subject,
		Body:         dto.Body,
		Status:       notification.Status(dto.Status),
		ErrorMessage: dto.ErrorMessage,
		RelatedKind:  notification.RelatedKind(dto.RelatedKind),
		RelatedID:    relatedID,
		CreatedAt:    dto.CreatedAt,
		SentAt:       dto.SentAt,
	})
}
