package tracker

import "strings"

// ConsultationRequest is a submitted contact form asking for a counseling
// appointment.
type ConsultationRequest struct {
	Name   string
	Email  string
	Reason string
}

// SubmitConsultationRequest accepts the form and emits one structured log
// event. That log line is the entire side effect: nothing is persisted and
// nothing leaves the process. Returns the assigned request ID.
func (s *Session) SubmitConsultationRequest(req ConsultationRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", NewInvalidError("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return "", NewInvalidError("email is required")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return "", NewInvalidError("reason is required")
	}
	id := s.idGen()
	s.log.Info().
		Str("request_id", id).
		Str("name", req.Name).
		Str("email", req.Email).
		Str("reason", req.Reason).
		Msg("consultation request received")
	s.appendAudit("consultation.submit", id)
	return id, nil
}
