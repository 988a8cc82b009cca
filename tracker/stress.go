package tracker

import "strconv"

// A stress score above this suggests a consultation.
const consultationThreshold = 7

// RunStressCheck records a self-assessed stress score in [1,10] and reports
// whether it crosses the consultation threshold. Only the most recent score
// is retained, purely as information for display.
func (s *Session) RunStressCheck(score int) (bool, error) {
	if score < 1 || score > 10 {
		return false, NewInvalidError("stress score must be between 1 and 10")
	}
	s.stressScore = score
	s.hasStress = true
	s.appendAudit("stress.check", strconv.Itoa(score))
	return score > consultationThreshold, nil
}

// LastStressScore returns the most recent stress score, if any was recorded.
func (s *Session) LastStressScore() (int, bool) {
	return s.stressScore, s.hasStress
}
