package catalog

import (
	"sort"

	"promtlearn/backend/models"
)

// Catalog is the fixed lesson set. It is built once at startup and never
// mutated afterwards, so lookups are safe from any goroutine without locking.
type Catalog struct {
	ordered []models.Lesson
	byID    map[int]models.Lesson
}

// New builds a catalog from the given lessons, ordered by SequenceOrder.
func New(lessons []models.Lesson) *Catalog {
	ordered := make([]models.Lesson, len(lessons))
	copy(ordered, lessons)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SequenceOrder < ordered[j].SequenceOrder
	})

	byID := make(map[int]models.Lesson, len(ordered))
	for _, l := range ordered {
		byID[l.ID] = l
	}

	return &Catalog{ordered: ordered, byID: byID}
}

// Default returns the catalog with the shipped course content.
func Default() *Catalog {
	return New(courseLessons)
}

// GetByID looks up a lesson. The second result is false for unknown ids.
func (c *Catalog) GetByID(id int) (models.Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// All returns every lesson ordered by SequenceOrder.
func (c *Catalog) All() []models.Lesson {
	out := make([]models.Lesson, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ListFree returns the free-tier lessons ordered by SequenceOrder.
func (c *Catalog) ListFree() []models.Lesson {
	return c.listTier(models.TierFree)
}

// ListPremium returns the premium-tier lessons ordered by SequenceOrder.
func (c *Catalog) ListPremium() []models.Lesson {
	return c.listTier(models.TierPremium)
}

func (c *Catalog) listTier(tier models.Tier) []models.Lesson {
	var out []models.Lesson
	for _, l := range c.ordered {
		if l.Tier == tier {
			out = append(out, l)
		}
	}
	return out
}

// TotalCount is the size of the full lesson set. Completion percentage must
// use this as its denominator rather than a hardcoded course length.
func (c *Catalog) TotalCount() int {
	return len(c.ordered)
}

// TotalDurationMinutes sums the duration of every lesson.
func (c *Catalog) TotalDurationMinutes() int {
	total := 0
	for _, l := range c.ordered {
		total += l.DurationMinutes
	}
	return total
}
