package models

import (
	"fmt"
	"slices"
	"time"
)

// ProgressState is the per-user progress record. It is persisted as a single
// JSON value in key-value storage, not as database rows: the whole state is
// small and always read and written as one unit. CompletedLessonIDs is a set
// kept as an insertion-ordered slice so the persisted form stays an array of
// integers.
type ProgressState struct {
	CompletedLessonIDs  []int     `json:"completed_lesson_ids"`
	LastAccessedLesson  *int      `json:"last_accessed_lesson"`
	CertificateEarned   bool      `json:"certificate_earned"`
	FullAccessPurchased bool      `json:"full_access_purchased"`
	LastUpdated         time.Time `json:"last_updated"`
}

// NewProgressState возвращает пустое состояние для нового пользователя
func NewProgressState() *ProgressState {
	return &ProgressState{
		CompletedLessonIDs: []int{},
		LastUpdated:        time.Now(),
	}
}

func (p *ProgressState) IsLessonCompleted(lessonID int) bool {
	return slices.Contains(p.CompletedLessonIDs, lessonID)
}

// MarkCompleted adds a lesson to the completed set. Adding a lesson that is
// already there changes nothing.
func (p *ProgressState) MarkCompleted(lessonID int) {
	if !p.IsLessonCompleted(lessonID) {
		p.CompletedLessonIDs = append(p.CompletedLessonIDs, lessonID)
	}
}

func (p *ProgressState) CompletedCount() int {
	return len(p.CompletedLessonIDs)
}

// CertificationStatus описывает право пользователя на сертификат
type CertificationStatus struct {
	IsEligible  bool       `json:"is_eligible"`
	EarnedDate  *time.Time `json:"earned_date,omitempty"`
	StudentName string     `json:"student_name,omitempty"`
}

// CertificateText renders the certificate body shown to the user. Empty while
// the certificate has not been earned.
func (cs CertificationStatus) CertificateText() string {
	if !cs.IsEligible {
		return ""
	}

	name := cs.StudentName
	if name == "" {
		name = "Student"
	}

	date := "N/A"
	if cs.EarnedDate != nil {
		date = cs.EarnedDate.Format("January 2, 2006")
	}

	return fmt.Sprintf(`Certificate of Completion

AI Prompting Masterclass for Coders

This certifies that %s has successfully
completed all lessons of the PromptCraft Academy course,
demonstrating proficiency in AI-assisted code development.

Completed: %s`, name, date)
}
