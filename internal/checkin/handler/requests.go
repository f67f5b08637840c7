package handler

import (
	"strings"

	dErrors "gatecheck/pkg/domain-errors"
)

// ScanRequest is the body of POST /checkin/scan. The code is passed through
// untouched: normalization is the service's job and the audit trail wants the
// raw submission.
type ScanRequest struct {
	Code      string `json:"code"`
	SessionID string `json:"session_id"`
	Channel   string `json:"channel"`
}

func (r *ScanRequest) Validate() error {
	if r.SessionID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "session_id is required")
	}
	if r.Channel == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "channel is required")
	}
	return nil
}

// OverrideRequest is the body of POST /checkin/override.
type OverrideRequest struct {
	RegistrationID string `json:"registration_id"`
	SessionID      string `json:"session_id"`
	Justification  string `json:"justification"`
}

func (r *OverrideRequest) Validate() error {
	if r.RegistrationID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "registration_id is required")
	}
	if r.SessionID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "session_id is required")
	}
	if strings.TrimSpace(r.Justification) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "justification is required")
	}
	return nil
}
