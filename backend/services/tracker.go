package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"promtlearn/backend/catalog"
	"promtlearn/backend/models"
	"promtlearn/backend/storage"
)

// ProgressTracker owns per-user progress and entitlement state. It is
// constructed once in main and injected into the controllers that need it.
//
// The in-memory state is authoritative for the session: every mutation is
// written through to the store, but a failed write is logged and the session
// keeps going on memory. A lesson's locked/unlocked status is never stored,
// it is always derived from (tier, FullAccessPurchased) at read time.
type ProgressTracker struct {
	catalog *catalog.Catalog
	store   storage.ProgressStore
	logger  *log.Logger

	mu     sync.Mutex
	states map[uint]*models.ProgressState
}

func NewProgressTracker(cat *catalog.Catalog, store storage.ProgressStore, logger *log.Logger) *ProgressTracker {
	return &ProgressTracker{
		catalog: cat,
		store:   store,
		logger:  logger,
		states:  make(map[uint]*models.ProgressState),
	}
}

// state returns the user's progress, loading it on first use. A missing or
// unreadable persisted record falls back to a fresh empty state rather than
// failing: the worst case is lost progress, never a refused request.
// Caller must hold t.mu.
func (t *ProgressTracker) state(ctx context.Context, userID uint) *models.ProgressState {
	if st, ok := t.states[userID]; ok {
		return st
	}

	st, err := t.store.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			t.logger.Printf("progress load failed for user %d, starting fresh: %v", userID, err)
		}
		st = models.NewProgressState()
	}
	t.states[userID] = st
	return st
}

// persist is best-effort write-through durability.
// Caller must hold t.mu.
func (t *ProgressTracker) persist(ctx context.Context, userID uint, st *models.ProgressState) {
	if err := t.store.Save(ctx, userID, st); err != nil {
		t.logger.Printf("progress save failed for user %d: %v", userID, err)
	}
}

// CompleteLesson marks a lesson completed. Unknown lesson ids are ignored.
// Completing an already-completed lesson still refreshes the last-accessed
// lesson and timestamp but cannot re-fire the certificate transition.
func (t *ProgressTracker) CompleteLesson(ctx context.Context, userID uint, lessonID int) {
	if _, ok := t.catalog.GetByID(lessonID); !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.state(ctx, userID)
	st.MarkCompleted(lessonID)
	st.LastAccessedLesson = &lessonID
	st.LastUpdated = time.Now()

	// Certificate is earned automatically the moment the final lesson
	// completes, and exactly once; only a full reset can clear it.
	if !st.CertificateEarned && t.catalog.TotalCount() > 0 && st.CompletedCount() == t.catalog.TotalCount() {
		st.CertificateEarned = true
	}

	t.persist(ctx, userID, st)
}

// MarkAccessed records a lesson visit without affecting completion.
// Unknown lesson ids are ignored.
func (t *ProgressTracker) MarkAccessed(ctx context.Context, userID uint, lessonID int) {
	if _, ok := t.catalog.GetByID(lessonID); !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.state(ctx, userID)
	st.LastAccessedLesson = &lessonID
	st.LastUpdated = time.Now()
	t.persist(ctx, userID, st)
}

// CanAccess reports whether the user may open a lesson. Free lessons are
// always open; premium lessons require the full-access purchase; unknown ids
// are never accessible.
func (t *ProgressTracker) CanAccess(ctx context.Context, userID uint, lessonID int) bool {
	lesson, ok := t.catalog.GetByID(lessonID)
	if !ok {
		return false
	}
	if !lesson.IsPremium() {
		return true
	}
	return t.HasFullAccess(ctx, userID)
}

// UnlockFullAccess applies a successful purchase or restore. The flag is
// monotonic: repeated calls are no-ops, and no tracker operation other than
// Reset ever clears it.
func (t *ProgressTracker) UnlockFullAccess(ctx context.Context, userID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.state(ctx, userID)
	if st.FullAccessPurchased {
		return
	}
	st.FullAccessPurchased = true
	st.LastUpdated = time.Now()
	t.persist(ctx, userID, st)
}

func (t *ProgressTracker) HasFullAccess(ctx context.Context, userID uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state(ctx, userID).FullAccessPurchased
}

func (t *ProgressTracker) IsLessonCompleted(ctx context.Context, userID uint, lessonID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state(ctx, userID).IsLessonCompleted(lessonID)
}

// CompletionPercentage is in [0, 100]. An empty catalog yields 0.
func (t *ProgressTracker) CompletionPercentage(ctx context.Context, userID uint) float64 {
	total := t.catalog.TotalCount()
	if total == 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.state(ctx, userID).CompletedCount()) / float64(total) * 100
}

func (t *ProgressTracker) CompletedCount(ctx context.Context, userID uint) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state(ctx, userID).CompletedCount()
}

func (t *ProgressTracker) RemainingCount(ctx context.Context, userID uint) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	remaining := t.catalog.TotalCount() - t.state(ctx, userID).CompletedCount()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsCertificateEligible reports whether every catalog lesson is completed.
// Unlike HasCertificate this is recomputed, not sticky.
func (t *ProgressTracker) IsCertificateEligible(ctx context.Context, userID uint) bool {
	total := t.catalog.TotalCount()
	if total == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state(ctx, userID).CompletedCount() == total
}

func (t *ProgressTracker) HasCertificate(ctx context.Context, userID uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state(ctx, userID).CertificateEarned
}

// CertificationStatus returns the sticky certificate record. The student name
// comes from the identity layer and is not stored with the progress.
func (t *ProgressTracker) CertificationStatus(ctx context.Context, userID uint, studentName string) models.CertificationStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.state(ctx, userID)
	if !st.CertificateEarned {
		return models.CertificationStatus{IsEligible: false}
	}

	earned := st.LastUpdated
	return models.CertificationStatus{
		IsEligible:  true,
		EarnedDate:  &earned,
		StudentName: studentName,
	}
}

// LastAccessedLesson returns the id of the most recently visited lesson, or
// false if the user has not opened any lesson yet.
func (t *ProgressTracker) LastAccessedLesson(ctx context.Context, userID uint) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.state(ctx, userID)
	if st.LastAccessedLesson == nil {
		return 0, false
	}
	return *st.LastAccessedLesson, true
}

// CompletedLessonIDs returns a copy of the completed set.
func (t *ProgressTracker) CompletedLessonIDs(ctx context.Context, userID uint) []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.state(ctx, userID).CompletedLessonIDs)
}

// Summary is the short progress line shown on the home screen.
func (t *ProgressTracker) Summary(ctx context.Context, userID uint) string {
	total := t.catalog.TotalCount()

	t.mu.Lock()
	completed := t.state(ctx, userID).CompletedCount()
	t.mu.Unlock()

	switch {
	case completed == 0:
		return "Start your AI prompting journey!"
	case completed == total:
		return "All lessons completed!"
	default:
		return fmt.Sprintf("%d of %d lessons completed", completed, total)
	}
}

// Reset replaces the user's progress with a fresh empty state. Support and
// testing flows only; this is the single operation that clears the
// certificate and purchase flags.
func (t *ProgressTracker) Reset(ctx context.Context, userID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := models.NewProgressState()
	t.states[userID] = st
	t.persist(ctx, userID, st)
}
