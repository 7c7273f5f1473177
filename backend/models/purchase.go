package models

import (
	"time"

	"gorm.io/gorm"
)

// Purchase result states reported back to the client.
const (
	PurchaseStateSuccess   = "success"
	PurchaseStateFailed    = "failed"
	PurchaseStateCancelled = "cancelled"
)

// PurchaseReceipt is a verified store transaction. Receipts are the durable
// record used by the restore flow: progress state can be wiped and the
// entitlement re-derived from here.
type PurchaseReceipt struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null"`
	ProductID     string    `gorm:"not null"`
	TransactionID string    `gorm:"unique;not null"`
	Receipt       string    `gorm:"not null"`
	VerifiedAt    time.Time
}
