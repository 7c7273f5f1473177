package models

// Tier определяет уровень доступа к уроку
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Lesson is a static catalog record. Lessons ship with the binary and are
// never written to the database; ids and orders of released lessons are
// stable across versions so completed-lesson sets stay meaningful.
type Lesson struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Subtitle        string          `json:"subtitle"`
	DurationMinutes int             `json:"duration_minutes"`
	Tier            Tier            `json:"tier"`
	SequenceOrder   int             `json:"sequence_order"`
	Sections        []LessonSection `json:"sections"`
	CodeExamples    []CodeExample   `json:"code_examples"`
	KeyTakeaways    []string        `json:"key_takeaways"`
}

type LessonSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type CodeExample struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Language    string `json:"language"`
	Explanation string `json:"explanation"`
}

func (l Lesson) IsPremium() bool {
	return l.Tier == TierPremium
}
