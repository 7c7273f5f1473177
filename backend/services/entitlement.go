package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"promtlearn/backend/models"
	"promtlearn/backend/repository"
)

// ErrVerificationFailed means the store receipt could not be verified.
// An unverified receipt is treated as no entitlement at all.
var ErrVerificationFailed = errors.New("receipt verification failed")

// ReceiptVerifier checks a purchase receipt against the payment provider.
type ReceiptVerifier interface {
	Verify(ctx context.Context, productID, receipt string) error
}

// SandboxReceiptVerifier accepts any well-formed (base64) receipt. It stands
// in for the platform verification endpoint outside production.
type SandboxReceiptVerifier struct{}

func (SandboxReceiptVerifier) Verify(ctx context.Context, productID, receipt string) error {
	receipt = strings.TrimSpace(receipt)
	if receipt == "" {
		return ErrVerificationFailed
	}
	if _, err := base64.StdEncoding.DecodeString(receipt); err != nil {
		return ErrVerificationFailed
	}
	return nil
}

// Product describes a purchasable item for the paywall screen.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// PurchaseResult is the terminal state of a purchase or restore attempt.
type PurchaseResult struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

// EntitlementService applies payment-provider results to the progress
// tracker. Every successful verification calls UnlockFullAccess, which is
// idempotent, so retried purchases and restores are safe.
type EntitlementService struct {
	productID string
	verifier  ReceiptVerifier
	receipts  repository.ReceiptRepository
	tracker   *ProgressTracker
	logger    *log.Logger
}

func NewEntitlementService(productID string, verifier ReceiptVerifier, receipts repository.ReceiptRepository, tracker *ProgressTracker, logger *log.Logger) *EntitlementService {
	return &EntitlementService{
		productID: productID,
		verifier:  verifier,
		receipts:  receipts,
		tracker:   tracker,
		logger:    logger,
	}
}

// Products returns the paywall catalog. A single product unlocks the full
// course.
func (s *EntitlementService) Products() []Product {
	return []Product{
		{
			ID:          s.productID,
			Title:       "Full Course Access",
			Description: "Unlock all premium lessons of the AI Prompting Masterclass",
			Price:       "$9.99",
		},
	}
}

// Purchase verifies a receipt and, on success, unlocks full access and
// records the receipt for later restores. Verification failure never touches
// progress state.
func (s *EntitlementService) Purchase(ctx context.Context, userID uint, productID, receipt string) PurchaseResult {
	if productID != s.productID {
		return PurchaseResult{State: models.PurchaseStateFailed, Message: "unknown product"}
	}

	if err := s.verifier.Verify(ctx, productID, receipt); err != nil {
		s.logger.Printf("purchase verification failed for user %d: %v", userID, err)
		return PurchaseResult{State: models.PurchaseStateFailed, Message: "purchase failed"}
	}

	record := &models.PurchaseReceipt{
		UserID:        userID,
		ProductID:     productID,
		TransactionID: uuid.NewString(),
		Receipt:       receipt,
		VerifiedAt:    time.Now(),
	}
	if err := s.receipts.Create(ctx, record); err != nil {
		// The entitlement is already verified; losing the receipt row only
		// weakens restore, so unlock anyway.
		s.logger.Printf("could not record receipt for user %d: %v", userID, err)
	}

	s.tracker.UnlockFullAccess(ctx, userID)
	return PurchaseResult{State: models.PurchaseStateSuccess, Message: "full access unlocked"}
}

// Restore re-applies the entitlement from previously verified receipts.
// Safe to retry: a repeated restore finds the same receipts and the unlock
// is a no-op.
func (s *EntitlementService) Restore(ctx context.Context, userID uint) (PurchaseResult, error) {
	receipts, err := s.receipts.FindByUserAndProduct(ctx, userID, s.productID)
	if err != nil {
		return PurchaseResult{}, err
	}
	if len(receipts) == 0 {
		return PurchaseResult{State: models.PurchaseStateFailed, Message: "no purchases to restore"}, nil
	}

	s.tracker.UnlockFullAccess(ctx, userID)
	return PurchaseResult{State: models.PurchaseStateSuccess, Message: "purchases restored"}, nil
}
