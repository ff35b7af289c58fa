package outboxrepo

import (
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Channel is the LISTEN/NOTIFY channel signalled on every enqueue.
const Channel = "notification_outbox"

type MessageDTO struct {
	ID           uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Kind         string                                `gorm:"type:varchar(32);not null"`
	Subject      string                                `gorm:"type:text;not null"`
	HTMLBody     string                                `gorm:"type:text;not null"`
	Push         datatypes.JSONType[notification.Push] `gorm:"type:jsonb;not null"`
	UserID       *uuid.UUID                            `gorm:"type:uuid"`
	State        string                                `gorm:"type:varchar(16);not null;index:idx_outbox_state_created"`
	Attempts     int                                   `gorm:"not null;default:0"`
	LastError    string                                `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time                             `gorm:"not null;autoCreateTime:false;index:idx_outbox_state_created"`
	DispatchedAt *time.Time
}

func (MessageDTO) TableName() string {
	return "notification_outbox"
}

type SubscriptionDTO struct {
	Endpoint  string    `gorm:"type:text;primaryKey"`
	P256dh    string    `gorm:"type:text;not null"`
	Auth      string    `gorm:"type:text;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (SubscriptionDTO) TableName() string {
	return "push_subscriptions"
}

func messageFromDomain(m *notification.Message) MessageDTO {
	var userID *uuid.UUID
	if id := m.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return MessageDTO{
		ID:           m.ID().Bytes(),
		Kind:         string(m.Kind()),
		Subject:      m.Subject(),
		HTMLBody:     m.HTMLBody(),
		Push:         datatypes.NewJSONType(m.Push()),
		UserID:       userID,
		State:        string(m.State()),
		Attempts:     m.Attempts(),
		LastError:    m.LastError(),
		CreatedAt:    m.CreatedAt(),
		DispatchedAt: m.DispatchedAt(),
	}
}

func messageToDomain(dto MessageDTO) (*notification.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uid, uidErr := kernel.UUIDFromBytes(dto.UserID[:])
		if uidErr != nil {
			return nil, uidErr
		}
		userID = &uid
	}

	return notification.RestoreMessage(
		id,
		notification.Kind(dto.Kind),
		dto.Subject,
		dto.HTMLBody,
		dto.Push.Data(),
		userID,
		notification.State(dto.State),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.DispatchedAt,
	)
}

func subscriptionToDomain(dto SubscriptionDTO) (*notification.Subscription, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return notification.NewSubscription(dto.Endpoint, dto.P256dh, dto.Auth, userID, dto.CreatedAt)
}
