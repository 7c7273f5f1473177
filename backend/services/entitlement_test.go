package services

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promtlearn/backend/models"
)

const testProductID = "com.promptcraft.fullcourse"

func validReceipt() string {
	return base64.StdEncoding.EncodeToString([]byte(`{"transaction":"sandbox"}`))
}

// memoryReceiptRepo is an in-memory ReceiptRepository for tests.
type memoryReceiptRepo struct {
	receipts []models.PurchaseReceipt
}

func (r *memoryReceiptRepo) Create(ctx context.Context, receipt *models.PurchaseReceipt) error {
	r.receipts = append(r.receipts, *receipt)
	return nil
}

func (r *memoryReceiptRepo) FindByUserAndProduct(ctx context.Context, userID uint, productID string) ([]models.PurchaseReceipt, error) {
	var out []models.PurchaseReceipt
	for _, rec := range r.receipts {
		if rec.UserID == userID && rec.ProductID == productID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestEntitlements() (*EntitlementService, *ProgressTracker, *memoryReceiptRepo) {
	tracker, _ := newTestTracker(twoFreeOnePremium())
	repo := &memoryReceiptRepo{}
	svc := NewEntitlementService(testProductID, SandboxReceiptVerifier{}, repo, tracker, testLogger())
	return svc, tracker, repo
}

func TestSandboxVerifier(t *testing.T) {
	v := SandboxReceiptVerifier{}
	ctx := context.Background()

	assert.NoError(t, v.Verify(ctx, testProductID, validReceipt()))
	assert.ErrorIs(t, v.Verify(ctx, testProductID, ""), ErrVerificationFailed)
	assert.ErrorIs(t, v.Verify(ctx, testProductID, "not base64 !!!"), ErrVerificationFailed)
}

func TestPurchaseSuccessUnlocksPremium(t *testing.T) {
	ctx := context.Background()
	svc, tracker, repo := newTestEntitlements()

	require.False(t, tracker.CanAccess(ctx, 1, 3))

	result := svc.Purchase(ctx, 1, testProductID, validReceipt())
	assert.Equal(t, models.PurchaseStateSuccess, result.State)
	assert.True(t, tracker.CanAccess(ctx, 1, 3))

	// The verified receipt is recorded for later restores.
	require.Len(t, repo.receipts, 1)
	assert.Equal(t, uint(1), repo.receipts[0].UserID)
	assert.NotEmpty(t, repo.receipts[0].TransactionID)
}

func TestPurchaseVerificationFailureDoesNotUnlock(t *testing.T) {
	ctx := context.Background()
	svc, tracker, repo := newTestEntitlements()

	result := svc.Purchase(ctx, 1, testProductID, "")
	assert.Equal(t, models.PurchaseStateFailed, result.State)
	assert.False(t, tracker.HasFullAccess(ctx, 1))
	assert.Empty(t, repo.receipts)
}

func TestPurchaseUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, tracker, _ := newTestEntitlements()

	result := svc.Purchase(ctx, 1, "com.promptcraft.unknown", validReceipt())
	assert.Equal(t, models.PurchaseStateFailed, result.State)
	assert.False(t, tracker.HasFullAccess(ctx, 1))
}

func TestRestoreWithoutPurchases(t *testing.T) {
	ctx := context.Background()
	svc, tracker, _ := newTestEntitlements()

	result, err := svc.Restore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStateFailed, result.State)
	assert.False(t, tracker.HasFullAccess(ctx, 1))
}

func TestRestoreIsRetrySafe(t *testing.T) {
	ctx := context.Background()
	svc, tracker, _ := newTestEntitlements()

	svc.Purchase(ctx, 1, testProductID, validReceipt())

	// Restore after a progress reset re-derives the entitlement from the
	// stored receipt, and retrying it changes nothing.
	tracker.Reset(ctx, 1)
	require.False(t, tracker.HasFullAccess(ctx, 1))

	for i := 0; i < 2; i++ {
		result, err := svc.Restore(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.PurchaseStateSuccess, result.State)
	}
	assert.True(t, tracker.HasFullAccess(ctx, 1))
}

func TestProducts(t *testing.T) {
	svc, _, _ := newTestEntitlements()

	products := svc.Products()
	require.Len(t, products, 1)
	assert.Equal(t, testProductID, products[0].ID)
	assert.Equal(t, "$9.99", products[0].Price)
}
