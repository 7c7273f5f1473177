package repository

import (
	"context"

	"gorm.io/gorm"

	"promtlearn/backend/models"
)

// ReceiptRepository stores verified purchase receipts. The restore flow
// re-derives the entitlement from these records, so they must outlive any
// progress reset.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.PurchaseReceipt) error
	FindByUserAndProduct(ctx context.Context, userID uint, productID string) ([]models.PurchaseReceipt, error)
}

type GormReceiptRepository struct {
	db *gorm.DB
}

func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

func (r *GormReceiptRepository) Create(ctx context.Context, receipt *models.PurchaseReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *GormReceiptRepository) FindByUserAndProduct(ctx context.Context, userID uint, productID string) ([]models.PurchaseReceipt, error) {
	var receipts []models.PurchaseReceipt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at DESC").
		Find(&receipts).Error
	return receipts, err
}
