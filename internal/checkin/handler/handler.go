// Package handler exposes the check-in operations over HTTP. Handlers decode
// and translate; every decision belongs to the service.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/httputil"
	"gatecheck/pkg/platform/middleware/auth"
	"gatecheck/pkg/requestcontext"
)

// Service is the check-in surface the handlers call into.
type Service interface {
	RecordAttendance(ctx context.Context, rawCode string, sessionID id.SessionID, channel id.Channel, operatorID id.OperatorID) (*models.Outcome, error)
	OverrideRecord(ctx context.Context, registrationID id.RegistrationID, sessionID id.SessionID, operatorID id.OperatorID, justification string) (*models.Outcome, error)
	ListSessionRecords(ctx context.Context, sessionID id.SessionID) ([]models.AttendanceRecord, error)
	ListSessionFailedAttempts(ctx context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the check-in routes. The caller supplies the operator auth
// middleware; the override route additionally requires the supervisor role.
func (h *Handler) Register(r chi.Router, requireOperator func(http.Handler) http.Handler) {
	r.Route("/checkin", func(r chi.Router) {
		r.Use(requireOperator)
		r.Post("/scan", h.handleScan)
		r.With(auth.RequireRole(auth.RoleSupervisor, h.logger)).Post("/override", h.handleOverride)
		r.Get("/sessions/{sessionID}/records", h.handleListRecords)
		r.Get("/sessions/{sessionID}/failed-attempts", h.handleListFailedAttempts)
	})
}

func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ScanRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sessionID, err := id.ParseSessionID(req.SessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	channel, err := id.ParseChannel(req.Channel)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	outcome, err := h.service.RecordAttendance(ctx, req.Code, sessionID, channel, requestcontext.OperatorID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, outcomeStatus(outcome), toOutcomeResponse(outcome))
}

func (h *Handler) handleOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[OverrideRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	registrationID, err := id.ParseRegistrationID(req.RegistrationID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	sessionID, err := id.ParseSessionID(req.SessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	outcome, err := h.service.OverrideRecord(ctx, registrationID, sessionID, requestcontext.OperatorID(ctx), req.Justification)
	if err != nil {
		h.logger.WarnContext(ctx, "override refused",
			"request_id", requestID,
			"registration_id", req.RegistrationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, outcomeStatus(outcome), toOutcomeResponse(outcome))
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	records, err := h.service.ListSessionRecords(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := RecordListResponse{Records: make([]RecordResponse, 0, len(records))}
	for _, record := range records {
		resp.Records = append(resp.Records, toRecordResponse(record))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListFailedAttempts(w http.ResponseWriter, r *http.Request) {
	sessionID, err := id.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	attempts, err := h.service.ListSessionFailedAttempts(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := FailedAttemptListResponse{Attempts: make([]FailedAttemptResponse, 0, len(attempts))}
	for _, attempt := range attempts {
		resp.Attempts = append(resp.Attempts, toFailedAttemptResponse(attempt))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// outcomeStatus maps outcomes onto HTTP statuses: a fresh record is a
// creation, a duplicate is a plain success, business rejections are 422, and
// an unreachable store is a 503 so terminals can tell infrastructure trouble
// from bad badges.
func outcomeStatus(outcome *models.Outcome) int {
	switch outcome.Status {
	case models.StatusRecorded:
		return http.StatusCreated
	case models.StatusAlreadyRecorded:
		return http.StatusOK
	default:
		if outcome.Reason == models.ReasonStoreUnavailable {
			return http.StatusServiceUnavailable
		}
		return http.StatusUnprocessableEntity
	}
}
