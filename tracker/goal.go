package tracker

import (
	"time"

	"github.com/quanhle/moodcal/emotion"
)

// SubmitGoal declares or replaces the goal. Unknown tags and non-positive
// day counts are rejected before any state changes. There is deliberately no
// upper bound on days: ambitious goals are allowed, they just cap the
// reachable percentage below 100.
func (s *Session) SubmitGoal(tag emotion.Tag, days int) error {
	if !emotion.Valid(tag) {
		return NewInvalidError("unknown emotion tag")
	}
	if days < 1 {
		return NewInvalidError("goal days must be at least 1")
	}
	s.goal = Goal{TargetEmotion: tag, TargetDays: days}
	s.flush()
	s.recomputeProgress()
	s.appendAudit("goal.set", string(tag))
	return nil
}

// Goal returns the active goal, if one is set.
func (s *Session) Goal() (Goal, bool) {
	if s.goal.TargetEmotion == "" || s.goal.TargetDays <= 0 {
		return Goal{}, false
	}
	return s.goal, true
}

// Progress returns the achieved percentage toward the active goal. ok is
// false when no goal is set. The value is not clamped: it exceeds 100 when
// more qualifying days exist than the goal asked for.
func (s *Session) Progress() (float64, bool) {
	return s.progress, s.hasProgress
}

// recomputeProgress refreshes the progress eagerly after every emotion or
// goal mutation, so reads never pay for a recompute.
//
// A day qualifies when its calendar day is on or after today−30d and its
// recorded tag equals the target. The window has no upper bound, so
// future-dated records qualify too. Time of day is ignored on both sides.
func (s *Session) recomputeProgress() {
	s.progress = 0
	s.hasProgress = false
	if s.goal.TargetEmotion == "" || s.goal.TargetDays <= 0 {
		return
	}
	windowStart := calendarDay(s.now()).AddDate(0, 0, -30)
	qualifying := 0
	for key, tag := range s.emotions {
		if tag != s.goal.TargetEmotion {
			continue
		}
		day, err := key.Day()
		if err != nil {
			// not a DateKey; skip rather than fail the whole recompute
			continue
		}
		if !day.Before(windowStart) {
			qualifying++
		}
	}
	s.progress = float64(qualifying) / float64(s.goal.TargetDays) * 100
	s.hasProgress = true
}

// calendarDay truncates t to UTC midnight of its calendar day.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
