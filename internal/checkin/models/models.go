// Package models holds the check-in domain entities and outcome types.
// Registrations and sessions are owned by external subsystems; the core only
// reads them. Attendance and failed-attempt records are owned here.
package models

import (
	"time"

	id "gatecheck/pkg/domain"
)

// PaymentStatus is the closed set of payment states the registration
// subsystem can report. Only approved registrations are eligible.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentDeclined PaymentStatus = "declined"
)

// Registration is a participant's enrollment in an event/category, created by
// the registration subsystem. The core never mutates it.
type Registration struct {
	ID               id.RegistrationID
	EventID          id.EventID
	CategoryID       string
	ParticipantName  string
	ParticipantEmail string
	PaymentStatus    PaymentStatus
	Code             string // unique attendance code printed on the badge
	Revoked          bool
}

// Eligible reports whether this registration may check in at all. The reason
// string is the audit-facing detail for ineligible registrations.
func (r Registration) Eligible() (bool, string) {
	if r.Revoked {
		return false, "registration revoked"
	}
	if r.PaymentStatus != PaymentApproved {
		return false, "payment " + string(r.PaymentStatus)
	}
	return true, ""
}

// Session is a scheduled, time-bounded unit attendees check into, owned by
// event setup. Start/end/capacity are read-only eligibility inputs here.
type Session struct {
	ID       id.SessionID
	EventID  id.EventID
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
	Capacity int // 0 means unbounded
	Active   bool
}

// AcceptsAt reports whether a scan at the given instant falls inside the
// session's configured acceptance window. The early lead and late grace come
// from explicit configuration, never inference.
func (s Session) AcceptsAt(now time.Time, earlyLead, lateGrace time.Duration) bool {
	if !s.Active {
		return false
	}
	if now.Before(s.StartsAt.Add(-earlyLead)) {
		return false
	}
	if now.After(s.EndsAt.Add(lateGrace)) {
		return false
	}
	return true
}

// AttendanceRecord is the durable, unique fact that a registration attended a
// session. At most one exists per (registration, session) pair; records are
// never updated or deleted by normal operation.
type AttendanceRecord struct {
	ID             id.RecordID
	RegistrationID id.RegistrationID
	SessionID      id.SessionID
	RecordedAt     time.Time
	Channel        id.Channel
	OperatorID     id.OperatorID
	Note           string
	// OverrideReason is present only when the record was created through the
	// override path.
	OverrideReason string
}

// FailedAttempt is an append-only audit entry for a rejected or erroring scan.
// It is never read by the check-in flow itself.
type FailedAttempt struct {
	ID         id.AttemptID
	Code       string       // raw candidate code as submitted
	SessionID  id.SessionID // nil UUID when the scan predates session selection
	Reason     FailureReason
	Detail     string
	Channel    id.Channel
	OperatorID id.OperatorID
	Terminal   string
	OccurredAt time.Time
	Note       string
}

// FailureReason classifies why a check-in did not produce a new record.
type FailureReason string

const (
	// ReasonMalformed: code normalization failed - user input problem.
	ReasonMalformed FailureReason = "malformed"
	// ReasonNotFound: code does not resolve - possibly forged or garbled.
	ReasonNotFound FailureReason = "not_found"
	// ReasonIneligible: payment/revocation - legitimate business rejection.
	ReasonIneligible FailureReason = "registration_ineligible"
	// ReasonSessionClosed: timing - legitimate business rejection.
	ReasonSessionClosed FailureReason = "session_closed"
	// ReasonStoreUnavailable: infrastructure failure, never audited as a scan
	// problem and always surfaced prominently to the operator.
	ReasonStoreUnavailable FailureReason = "store_unavailable"
)

// OutcomeStatus is the closed set of results recordAttendance can return.
type OutcomeStatus string

const (
	StatusRecorded        OutcomeStatus = "recorded"
	StatusAlreadyRecorded OutcomeStatus = "already_recorded"
	StatusRejected        OutcomeStatus = "rejected"
)

// Presentation is the operator-facing traffic light for an outcome: rapid
// on-site scanning must never leave ambiguity about whether a participant was
// let through.
type Presentation string

const (
	PresentationSuccess  Presentation = "success"
	PresentationWarning  Presentation = "warning"
	PresentationRejected Presentation = "rejected"
)

// Outcome is the definite result of one check-in operation.
type Outcome struct {
	Status OutcomeStatus
	// Record is set for Recorded and AlreadyRecorded; for AlreadyRecorded it
	// is the winning record.
	Record *AttendanceRecord
	// Reason and Detail are set for Rejected.
	Reason FailureReason
	Detail string
}

// Presentation maps the outcome onto the three-state operator display.
func (o Outcome) Presentation() Presentation {
	switch o.Status {
	case StatusRecorded:
		return PresentationSuccess
	case StatusAlreadyRecorded:
		return PresentationWarning
	default:
		return PresentationRejected
	}
}

// EligibilityStatus enumerates the validator's verdicts.
type EligibilityStatus string

const (
	EligibilityValid           EligibilityStatus = "valid"
	EligibilityNotFound        EligibilityStatus = "not_found"
	EligibilityIneligible      EligibilityStatus = "ineligible"
	EligibilitySessionClosed   EligibilityStatus = "session_closed"
	EligibilityAlreadyAttended EligibilityStatus = "already_attended"
)

// EligibilityResult is the validator's verdict on a candidate code for a
// target session.
type EligibilityResult struct {
	Status       EligibilityStatus
	Registration *Registration     // set when the code resolved
	Existing     *AttendanceRecord // set for AlreadyAttended
	Detail       string            // human-readable rejection detail
}
