package entity

import (
	"time"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentUPI            PaymentMethod = "UPI"
	PaymentWallet         PaymentMethod = "WALLET"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCashOnDelivery, PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentWallet:
		return PaymentMethod(s), true
	}
	return "", false
}

// Online reports whether settlement goes through the gateway.
func (m PaymentMethod) Online() bool {
	return m != PaymentCashOnDelivery
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), true
	}
	return "", false
}

type Payment struct {
	ID uint `gorm:"primarykey" json:"id"`

	// unique index makes "at most one payment per order" a database invariant
	OrderID uint  `gorm:"not null;uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	Amount        Money         `gorm:"not null" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"not null" json:"paymentMethod"`
	Status        PaymentStatus `gorm:"not null;default:PENDING" json:"status"`

	TransactionID  string `json:"transactionId,omitempty"`
	PaymentDetails string `json:"paymentDetails,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}
