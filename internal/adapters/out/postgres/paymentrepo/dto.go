package paymentrepo

import (
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Method    string          `gorm:"type:varchar(16);not null"`
	PaidAt    time.Time       `gorm:"type:date;not null;index"`
	Notes     string          `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime:false"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		Amount:    p.Amount(),
		Method:    p.Method().String(),
		PaidAt:    p.PaidAt(),
		Notes:     p.Notes(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	return payment.RestorePayment(id, orderID, dto.Amount, payment.Method(dto.Method), dto.PaidAt, dto.Notes, dto.CreatedAt)
}
