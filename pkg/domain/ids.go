package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "gatecheck/pkg/domain-errors"
)

// Typed IDs prevent cross-entity mixups at compile time. Construct via the
// Parse functions at trust boundaries; direct casting bypasses validation.
type (
	// RegistrationID identifies a participant's enrollment.
	RegistrationID uuid.UUID

	// SessionID identifies a check-in-able meal/activity session.
	SessionID uuid.UUID

	// EventID identifies the event a registration or session belongs to.
	EventID uuid.UUID

	// RecordID identifies an attendance record.
	RecordID uuid.UUID

	// AttemptID identifies a failed check-in attempt.
	AttemptID uuid.UUID
)

// OperatorID is the opaque staff identifier supplied by the external auth
// service. It is carried through for audit attribution and never interpreted.
type OperatorID string

func (o OperatorID) IsEmpty() bool { return strings.TrimSpace(string(o)) == "" }

func (o OperatorID) String() string { return string(o) }

func (id RegistrationID) String() string { return uuid.UUID(id).String() }
func (id SessionID) String() string      { return uuid.UUID(id).String() }
func (id EventID) String() string        { return uuid.UUID(id).String() }
func (id RecordID) String() string       { return uuid.UUID(id).String() }
func (id AttemptID) String() string      { return uuid.UUID(id).String() }

func (id RegistrationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id RecordID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id AttemptID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }

// NewRecordID mints a fresh attendance record identifier.
func NewRecordID() RecordID { return RecordID(uuid.New()) }

// NewAttemptID mints a fresh failed-attempt identifier.
func NewAttemptID() AttemptID { return AttemptID(uuid.New()) }

// ParseRegistrationID validates external input as a registration ID.
func ParseRegistrationID(s string) (RegistrationID, error) {
	u, err := parseUUID(s, "registration_id")
	return RegistrationID(u), err
}

// ParseSessionID validates external input as a session ID.
func ParseSessionID(s string) (SessionID, error) {
	u, err := parseUUID(s, "session_id")
	return SessionID(u), err
}

// ParseRecordID validates external input as a record ID.
func ParseRecordID(s string) (RecordID, error) {
	u, err := parseUUID(s, "record_id")
	return RecordID(u), err
}

// parseUUID enforces the shared invariant: IDs must be valid, non-empty,
// non-nil UUIDs.
func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, field+" is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be the nil UUID")
	}
	return u, nil
}
