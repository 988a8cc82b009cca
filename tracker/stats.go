package tracker

import (
	"sort"

	"github.com/quanhle/moodcal/emotion"
)

// EmotionFrequencies groups all emotion records by tag. Output order is not
// significant to callers; rows are emitted tag-sorted so repeated renders of
// the same state look the same.
func (s *Session) EmotionFrequencies() []Frequency {
	counts := map[emotion.Tag]int{}
	for _, tag := range s.emotions {
		counts[tag]++
	}
	tags := make([]emotion.Tag, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	out := make([]Frequency, 0, len(tags))
	for _, tag := range tags {
		out = append(out, Frequency{Tag: tag, Count: counts[tag]})
	}
	return out
}
