// Package tracker implements the emotion/journal state engine: date-keyed
// emotion and journal records, the durable-mirror synchronization contract,
// and goal progress over a trailing 30-day window.
package tracker

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quanhle/moodcal/emotion"
	"github.com/quanhle/moodcal/storage"
)

// Session owns all tracker state for one user. It is the single writer and
// reader of its stores: the execution model is single-session and
// synchronous, so Session is not safe for concurrent use.
//
// Every mutation re-serializes the entire state (both record maps and the
// goal) to the persistence adapter before the next mutation can be issued.
// O(total records) per edit, acceptable with record counts bounded by one
// entry per calendar day.
type Session struct {
	store storage.Adapter
	log   zerolog.Logger
	now   func() time.Time
	idGen func() string

	selected    DateKey
	emotions    map[DateKey]emotion.Tag
	journal     map[DateKey]string
	goal        Goal
	progress    float64
	hasProgress bool
	stressScore int
	hasStress   bool
	audit       []AuditEntry
	syncErr     error
}

type Option func(*Session)

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

func NewSession(store storage.Adapter, opts ...Option) *Session {
	s := &Session{
		store:    store,
		log:      zerolog.Nop(),
		now:      func() time.Time { return time.Now().UTC() },
		idGen:    uuid.NewString,
		emotions: map[DateKey]emotion.Tag{},
		journal:  map[DateKey]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads persisted state. It is meant to run exactly once, before
// any mutation. A missing or undecodable value falls back to the empty
// default for that key; only adapter I/O failures are returned.
func (s *Session) Initialize() error {
	s.emotions = map[DateKey]emotion.Tag{}
	s.journal = map[DateKey]string{}
	s.goal = Goal{}

	emotions := map[DateKey]emotion.Tag{}
	if ok, err := s.loadJSON(storage.KeyEmotions, &emotions); err != nil {
		return err
	} else if ok {
		s.emotions = emotions
	}
	journal := map[DateKey]string{}
	if ok, err := s.loadJSON(storage.KeyJournal, &journal); err != nil {
		return err
	} else if ok {
		s.journal = journal
	}
	var g Goal
	if ok, err := s.loadJSON(storage.KeyGoal, &g); err != nil {
		return err
	} else if ok && g.TargetEmotion != "" {
		s.goal = g
	}

	s.selected = DateKeyFor(s.now())
	s.recomputeProgress()
	return nil
}

// loadJSON decodes one persisted value into dst and reports whether dst
// holds usable data. Corrupt data is logged and treated as absent; the
// caller must not use dst then, since a failed decode can leave it
// partially filled.
func (s *Session) loadJSON(key string, dst any) (bool, error) {
	raw, ok, err := s.store.Load(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("corrupt persisted value, falling back to empty")
		return false, nil
	}
	return true, nil
}

// SelectDate sets the current day and returns its key. Selection is pure
// presentation state and is not persisted.
func (s *Session) SelectDate(t time.Time) DateKey {
	s.selected = DateKeyFor(t)
	return s.selected
}

func (s *Session) SelectedDate() DateKey { return s.selected }

// ChooseEmotion records tag for the given day, overwriting any prior value.
func (s *Session) ChooseEmotion(date DateKey, tag emotion.Tag) error {
	if !emotion.Valid(tag) {
		return NewInvalidError("unknown emotion tag")
	}
	s.emotions[date] = tag
	s.flush()
	s.recomputeProgress()
	s.appendAudit("emotion.set", string(date))
	return nil
}

// Emotion returns the recorded tag for the day, if any.
func (s *Session) Emotion(date DateKey) (emotion.Tag, bool) {
	tag, ok := s.emotions[date]
	return tag, ok
}

// EditJournal records the journal text for the day. An empty string is a
// stored value, distinct from no entry at all.
func (s *Session) EditJournal(date DateKey, text string) {
	s.journal[date] = text
	s.flush()
	s.appendAudit("journal.edit", string(date))
}

// Journal returns the journal text for the day, if any.
func (s *Session) Journal(date DateKey) (string, bool) {
	text, ok := s.journal[date]
	return text, ok
}

// SuggestedActivities returns the static activity list for tag.
func (s *Session) SuggestedActivities(tag emotion.Tag) []string {
	return emotion.Activities(tag)
}

// LastSyncErr reports the error from the most recent persistence sync, or
// nil if it succeeded. In-memory state stays authoritative either way.
func (s *Session) LastSyncErr() error { return s.syncErr }

// Audit returns a copy of the mutation trail.
func (s *Session) Audit() []AuditEntry {
	return append([]AuditEntry(nil), s.audit...)
}

// flush writes the full state under all three keys, synchronously, so the
// durable mirror never lags a mutation. A failed write is logged and
// remembered but does not disturb in-memory state.
func (s *Session) flush() {
	s.syncErr = nil
	s.persist(storage.KeyEmotions, s.emotions)
	s.persist(storage.KeyJournal, s.journal)
	s.persist(storage.KeyGoal, s.goal)
}

func (s *Session) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.store.Save(key, string(data))
	}
	if err != nil {
		s.log.Error().Str("key", key).Err(err).Msg("persistence sync failed")
		if s.syncErr == nil {
			s.syncErr = err
		}
	}
}

func (s *Session) appendAudit(action, target string) {
	s.audit = append(s.audit, AuditEntry{
		ID:     s.idGen(),
		Time:   s.now(),
		Action: action,
		Target: target,
	})
}
