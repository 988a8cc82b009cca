package tracker

import (
	"time"

	"github.com/quanhle/moodcal/emotion"
)

const dateLayout = "2006-01-02"

// DateKey is the canonical YYYY-MM-DD identifier of a calendar day, derived
// from the date's UTC calendar day. It is the join key between emotion and
// journal records: two dates are the same record iff their keys are equal.
type DateKey string

// DateKeyFor derives the key for t's UTC calendar day.
func DateKeyFor(t time.Time) DateKey {
	return DateKey(t.UTC().Format(dateLayout))
}

// Day parses the key back into UTC midnight of its calendar day.
func (k DateKey) Day() (time.Time, error) {
	return time.Parse(dateLayout, string(k))
}

// Goal is the user-declared aspiration: feel TargetEmotion on TargetDays of
// the trailing 30 days. A zero TargetEmotion means no active goal. The core
// only requires TargetDays >= 1; the usual 1..30 range is a presentation
// concern.
type Goal struct {
	TargetEmotion emotion.Tag `json:"emotion"`
	TargetDays    int         `json:"days"`
}

// Frequency is one row of the aggregate emotion count table.
type Frequency struct {
	Tag   emotion.Tag
	Count int
}

// AuditEntry records one successful mutation. The trail is in-memory only.
type AuditEntry struct {
	ID     string
	Time   time.Time
	Action string
	Target string
}
