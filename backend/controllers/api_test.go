package controllers_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promtlearn/backend/catalog"
	"promtlearn/backend/config"
	"promtlearn/backend/models"
	"promtlearn/backend/repository"
	"promtlearn/backend/routes"
	"promtlearn/backend/services"
	"promtlearn/backend/storage"
)

// fakeUserRepo is an in-memory UserRepository for handler tests.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

// fakeReceiptRepo is an in-memory ReceiptRepository for handler tests.
type fakeReceiptRepo struct {
	mu       sync.Mutex
	receipts []models.PurchaseReceipt
}

func (r *fakeReceiptRepo) Create(ctx context.Context, receipt *models.PurchaseReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts = append(r.receipts, *receipt)
	return nil
}

func (r *fakeReceiptRepo) FindByUserAndProduct(ctx context.Context, userID uint, productID string) ([]models.PurchaseReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.PurchaseReceipt
	for _, rec := range r.receipts {
		if rec.UserID == userID && rec.ProductID == productID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
		ProductID:  "com.promptcraft.fullcourse",
	}

	logger := log.New(io.Discard, "", 0)
	cat := catalog.Default()
	users := newFakeUserRepo()
	receipts := &fakeReceiptRepo{}
	tracker := services.NewProgressTracker(cat, storage.NewMemoryProgressStore(), logger)
	entitlements := services.NewEntitlementService(cfg.ProductID, services.SandboxReceiptVerifier{}, receipts, tracker, logger)

	app := fiber.New()
	routes.SetupRoutes(app, cat, tracker, entitlements, users, cfg)

	// Register a user and grab the token the way a client would.
	body := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "password123",
	}, fiber.StatusOK)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}, wantStatus int) map[string]interface{} {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s", method, path)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func sandboxReceipt() string {
	return base64.StdEncoding.EncodeToString([]byte(`{"transaction":"test"}`))
}

func TestLogin(t *testing.T) {
	app, _ := setupApp(t)

	body := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "password123",
	}, fiber.StatusOK)
	assert.NotEmpty(t, body["token"])

	doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	}, fiber.StatusUnauthorized)
}

func TestLessonsRequireAuth(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/api/lessons/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListLessons(t *testing.T) {
	app, token := setupApp(t)

	d := data(t, doJSON(t, app, "GET", "/api/lessons/", token, nil, fiber.StatusOK))
	assert.Equal(t, float64(8), d["total_count"])
	assert.Equal(t, float64(180), d["total_duration_minutes"])

	lessons := d["lessons"].([]interface{})
	require.Len(t, lessons, 8)

	first := lessons[0].(map[string]interface{})
	assert.Equal(t, "free", first["tier"])
	assert.Equal(t, false, first["locked"])

	last := lessons[7].(map[string]interface{})
	assert.Equal(t, "premium", last["tier"])
	assert.Equal(t, true, last["locked"])
}

func TestTierListings(t *testing.T) {
	app, token := setupApp(t)

	free := data(t, doJSON(t, app, "GET", "/api/lessons/free", token, nil, fiber.StatusOK))
	assert.Len(t, free["lessons"].([]interface{}), 2)

	premium := data(t, doJSON(t, app, "GET", "/api/lessons/premium", token, nil, fiber.StatusOK))
	assert.Len(t, premium["lessons"].([]interface{}), 6)
}

func TestGetLesson(t *testing.T) {
	app, token := setupApp(t)

	// Free lesson opens and records the visit.
	d := data(t, doJSON(t, app, "GET", "/api/lessons/1", token, nil, fiber.StatusOK))
	lesson := d["lesson"].(map[string]interface{})
	assert.Equal(t, "Prompt Basics for Developers", lesson["title"])

	progress := data(t, doJSON(t, app, "GET", "/api/progress", token, nil, fiber.StatusOK))
	assert.Equal(t, float64(1), progress["last_accessed_lesson"])

	// Premium lesson is locked before purchase; unknown id is 404.
	doJSON(t, app, "GET", "/api/lessons/3", token, nil, fiber.StatusForbidden)
	doJSON(t, app, "GET", "/api/lessons/99", token, nil, fiber.StatusNotFound)
}

func TestCompleteLessonUpdatesProgress(t *testing.T) {
	app, token := setupApp(t)

	doJSON(t, app, "POST", "/api/lessons/1/complete", token, nil, fiber.StatusOK)
	d := data(t, doJSON(t, app, "POST", "/api/lessons/2/complete", token, nil, fiber.StatusOK))
	assert.Equal(t, 25.0, d["completion_percent"])
	assert.Equal(t, false, d["certificate_earned"])

	// Completing a locked premium lesson is rejected.
	doJSON(t, app, "POST", "/api/lessons/3/complete", token, nil, fiber.StatusForbidden)

	progress := data(t, doJSON(t, app, "GET", "/api/progress", token, nil, fiber.StatusOK))
	assert.Equal(t, "2 of 8 lessons completed", progress["summary"])
	assert.Equal(t, false, progress["full_access"])
}

func TestPurchaseUnlocksAndCertificateFlow(t *testing.T) {
	app, token := setupApp(t)

	// Products are visible without auth.
	req := httptest.NewRequest("GET", "/api/store/products", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Certificate not earned yet.
	cert := data(t, doJSON(t, app, "GET", "/api/certificate", token, nil, fiber.StatusOK))
	status := cert["status"].(map[string]interface{})
	assert.Equal(t, false, status["is_eligible"])

	// Purchase, then every lesson becomes accessible.
	d := data(t, doJSON(t, app, "POST", "/api/store/purchase", token, map[string]string{
		"product_id": "com.promptcraft.fullcourse",
		"receipt":    sandboxReceipt(),
	}, fiber.StatusOK))
	assert.Equal(t, "success", d["state"])

	for id := 1; id <= 8; id++ {
		doJSON(t, app, "POST", "/api/lessons/"+itoa(id)+"/complete", token, nil, fiber.StatusOK)
	}

	progress := data(t, doJSON(t, app, "GET", "/api/progress", token, nil, fiber.StatusOK))
	assert.Equal(t, 100.0, progress["completion_percent"])
	assert.Equal(t, true, progress["certificate_earned"])
	assert.Equal(t, "All lessons completed!", progress["summary"])

	cert = data(t, doJSON(t, app, "GET", "/api/certificate", token, nil, fiber.StatusOK))
	status = cert["status"].(map[string]interface{})
	assert.Equal(t, true, status["is_eligible"])
	assert.Contains(t, cert["certificate_text"], "Ada Lovelace")
}

func TestPurchaseFailedAndCancelled(t *testing.T) {
	app, token := setupApp(t)

	d := data(t, doJSON(t, app, "POST", "/api/store/purchase", token, map[string]string{
		"product_id": "com.promptcraft.fullcourse",
		"receipt":    "",
	}, fiber.StatusOK))
	assert.Equal(t, "failed", d["state"])

	d = data(t, doJSON(t, app, "POST", "/api/store/purchase", token, map[string]interface{}{
		"product_id": "com.promptcraft.fullcourse",
		"cancelled":  true,
	}, fiber.StatusOK))
	assert.Equal(t, "cancelled", d["state"])

	// Neither outcome unlocked anything.
	doJSON(t, app, "GET", "/api/lessons/3", token, nil, fiber.StatusForbidden)
}

func TestResetAndRestore(t *testing.T) {
	app, token := setupApp(t)

	doJSON(t, app, "POST", "/api/store/purchase", token, map[string]string{
		"product_id": "com.promptcraft.fullcourse",
		"receipt":    sandboxReceipt(),
	}, fiber.StatusOK)
	doJSON(t, app, "POST", "/api/lessons/3/complete", token, nil, fiber.StatusOK)

	doJSON(t, app, "POST", "/api/progress/reset", token, nil, fiber.StatusOK)

	progress := data(t, doJSON(t, app, "GET", "/api/progress", token, nil, fiber.StatusOK))
	assert.Equal(t, 0.0, progress["completion_percent"])
	assert.Equal(t, false, progress["full_access"])

	// Restore re-derives the entitlement from the stored receipt.
	d := data(t, doJSON(t, app, "POST", "/api/store/restore", token, nil, fiber.StatusOK))
	assert.Equal(t, "success", d["state"])
	doJSON(t, app, "GET", "/api/lessons/3", token, nil, fiber.StatusOK)
}

func TestUpdateProfileChangesCertificateName(t *testing.T) {
	app, token := setupApp(t)

	doJSON(t, app, "PUT", "/api/user/profile", token, map[string]string{
		"name": "Grace Hopper",
	}, fiber.StatusOK)

	doJSON(t, app, "POST", "/api/store/purchase", token, map[string]string{
		"product_id": "com.promptcraft.fullcourse",
		"receipt":    sandboxReceipt(),
	}, fiber.StatusOK)
	for id := 1; id <= 8; id++ {
		doJSON(t, app, "POST", "/api/lessons/"+itoa(id)+"/complete", token, nil, fiber.StatusOK)
	}

	cert := data(t, doJSON(t, app, "GET", "/api/certificate", token, nil, fiber.StatusOK))
	assert.Contains(t, cert["certificate_text"], "Grace Hopper")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
