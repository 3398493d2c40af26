// Package paymentrepo maps payments to their relational form. Payments are
// append-only; there is no update path.
package paymentrepo

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/payment"
)

// PaymentDTO represents one persisted tender.
type PaymentDTO struct {
	ID          string `gorm:"primaryKey;size:36"`
	OrderID     string `gorm:"size:36;index"`
	Tender      string `gorm:"size:16"`
	AmountMinor int64
	PaidAt      time.Time
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          p.ID().String(),
		OrderID:     p.OrderID().String(),
		Tender:      p.Tender().String(),
		AmountMinor: p.Amount().Minor(),
		PaidAt:      p.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	tender, err := payment.TenderFromString(dto.Tender)
	if err != nil {
		return nil, err
	}
	return payment.RestorePayment(id, orderID, tender, kernel.NewMoney(dto.AmountMinor), dto.PaidAt)
}
