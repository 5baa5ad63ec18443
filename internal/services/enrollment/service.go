package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// ErrInvalidEnrollmentID is returned for an unparsable inscripcion_id
var ErrInvalidEnrollmentID = errors.New("invalid enrollment id")

// ParseEnrollmentID parses a submitted enrollment id
func ParseEnrollmentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEnrollmentID, raw)
	}
	return id, nil
}

// ParseKills parses a submitted kill count. Only non-negative integers are accepted.
func ParseKills(raw string) (int, error) {
	kills, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || kills < 0 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidKills, raw)
	}
	return kills, nil
}

// Service backs the admin panel: listing enrollments by payment state and
// recording verification and kills
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates an enrollment service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Pending lists enrollments whose payment is not verified yet
func (s *Service) Pending(ctx context.Context) ([]model.EnrollmentDetail, error) {
	details, err := s.storage.ListEnrollments(ctx, model.PendingPayment())
	if err != nil {
		s.logger.Error("failed to list pending enrollments", "error", err)
		return nil, err
	}
	return details, nil
}

// Verified lists enrollments whose payment has been verified
func (s *Service) Verified(ctx context.Context) ([]model.EnrollmentDetail, error) {
	details, err := s.storage.ListEnrollments(ctx, model.VerifiedPayment())
	if err != nil {
		s.logger.Error("failed to list verified enrollments", "error", err)
		return nil, err
	}
	return details, nil
}

// VerifyPayment marks an enrollment as paid. Repeating it is harmless.
func (s *Service) VerifyPayment(ctx context.Context, id int64) error {
	if err := s.storage.SetPaymentVerified(ctx, id); err != nil {
		s.logger.Error("failed to verify payment", "enrollment_id", id, "error", err)
		return err
	}
	s.logger.Info("payment verified", "enrollment_id", id)
	return nil
}

// SetKills overwrites the kill count of an enrollment
func (s *Service) SetKills(ctx context.Context, id int64, kills int) error {
	if kills < 0 {
		return model.ErrInvalidKills
	}
	if err := s.storage.SetKills(ctx, id, kills); err != nil {
		s.logger.Error("failed to save kills", "enrollment_id", id, "kills", kills, "error", err)
		return err
	}
	s.logger.Info("kills saved", "enrollment_id", id, "kills", kills)
	return nil
}
