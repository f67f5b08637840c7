package directory

import (
	"time"

	"github.com/google/uuid"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// Seed fills an in-memory directory with a small fixed data set for demo and
// local development boot. Codes are stored in normalized form.
func Seed(dir *InMemoryDirectory) (id.SessionID, []models.Registration) {
	eventID := id.EventID(uuid.MustParse("6f2c0be4-9a1d-4c58-8a33-1f6f6a2d9b01"))
	sessionID := id.SessionID(uuid.MustParse("c2a8f3d1-5e47-4b02-9c11-8d4e7a6b3f02"))

	now := time.Now()
	dir.PutSession(models.Session{
		ID:       sessionID,
		EventID:  eventID,
		Name:     "Opening Keynote",
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(8 * time.Hour),
		Capacity: 500,
		Active:   true,
	})

	registrations := []models.Registration{
		{
			ID:               id.RegistrationID(uuid.MustParse("0b1d4f7a-2c3e-4d15-b6a7-9e8f0c1d2a03")),
			EventID:          eventID,
			CategoryID:       "general",
			ParticipantName:  "Ada Kovacs",
			ParticipantEmail: "ada@example.com",
			PaymentStatus:    models.PaymentApproved,
			Code:             "REG-ALPHA-001",
		},
		{
			ID:               id.RegistrationID(uuid.MustParse("1c2e5a8b-3d4f-4e26-c7b8-0f9a1d2e3b04")),
			EventID:          eventID,
			CategoryID:       "general",
			ParticipantName:  "Ben Osei",
			ParticipantEmail: "ben@example.com",
			PaymentStatus:    models.PaymentPending,
			Code:             "REG-BRAVO-002",
		},
		{
			ID:               id.RegistrationID(uuid.MustParse("2d3f6b9c-4e5a-4f37-d8c9-1a0b2e3f4c05")),
			EventID:          eventID,
			CategoryID:       "speaker",
			ParticipantName:  "Carla Diaz",
			ParticipantEmail: "carla@example.com",
			PaymentStatus:    models.PaymentApproved,
			Code:             "REG-CHARLIE-003",
			Revoked:          true,
		},
	}
	for _, reg := range registrations {
		dir.PutRegistration(reg)
	}
	return sessionID, registrations
}
