package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/communiteer/welcomehub/internal/app/models"
	"github.com/communiteer/welcomehub/internal/pkg/apperrors"
	"github.com/communiteer/welcomehub/internal/pkg/helpers"
	"github.com/communiteer/welcomehub/internal/pkg/logger"
	"github.com/communiteer/welcomehub/internal/pkg/validation"
	"github.com/communiteer/welcomehub/internal/pkg/webhook"
)

// Caller-facing messages
const (
	MsgCheckinNotConfigured = "Check-in is not configured. GOOGLE_SHEETS_WEBHOOK_URL is missing."
	MsgEoiNotConfigured     = "EOI form is not configured. GOOGLE_SHEETS_EOI_WEBHOOK_URL is missing."
	MsgInvalidRequest       = "Invalid request format."
	MsgCheckinMissing       = "Required check-in details are missing."
	MsgEoiMissing           = "Required expression of interest details are missing."
	MsgCheckinUnreachable   = "We couldn't reach the registration service. Please try again later."
	MsgCheckinRejected      = "The registration service returned an error. Please try again later."
	MsgEoiUnreachable       = "We couldn't reach the EOI service. Please try again later."
	MsgEoiRejected          = "The EOI service returned an error. Please try again later."
)

// DefaultMaxBodyBytes caps a request body when no limit is configured.
const DefaultMaxBodyBytes int64 = 64 << 10

// SubmissionService validates, normalizes and forwards form submissions.
type SubmissionService interface {
	SubmitCheckin(ctx context.Context, body io.Reader) error
	SubmitEoi(ctx context.Context, body io.Reader) error
}

// SubmissionConfig holds the destinations and limits for submissions.
type SubmissionConfig struct {
	CheckinURL   string
	EoiURL       string
	MaxBodyBytes int64
}

// submissionServiceImpl implements the SubmissionService interface
type submissionServiceImpl struct {
	cfg       SubmissionConfig
	forwarder webhook.Client
	logger    zerolog.Logger
	now       func() time.Time
}

// SubmissionOption customizes the service.
type SubmissionOption func(*submissionServiceImpl)

// WithClock overrides the clock used to stamp submittedAt.
func WithClock(now func() time.Time) SubmissionOption {
	return func(s *submissionServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(cfg SubmissionConfig, forwarder webhook.Client, lgr zerolog.Logger, opts ...SubmissionOption) SubmissionService {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &submissionServiceImpl{
		cfg:       cfg,
		forwarder: forwarder,
		logger:    lgr,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// forwardMessages names the caller messages for one destination.
type forwardMessages struct {
	unreachable string
	rejected    string
}

// SubmitCheckin handles one check-in body end to end.
func (s *submissionServiceImpl) SubmitCheckin(ctx context.Context, body io.Reader) error {
	lgr := logger.FromContext(ctx, s.logger).With().Str("form", "checkin").Logger()

	if s.cfg.CheckinURL == "" {
		lgr.Error().Msg("GOOGLE_SHEETS_WEBHOOK_URL is not configured")
		return apperrors.NewConfigurationError(MsgCheckinNotConfigured)
	}

	record, err := s.decode(body)
	if err != nil {
		lgr.Debug().Err(err).Msg("Rejected malformed check-in body")
		return err
	}

	submission := record.CheckinSubmission()
	if missing := validation.MissingFields(models.CheckinRules, submission.Field); len(missing) > 0 {
		lgr.Info().Strs("missing", missing).Msg("Check-in failed validation")
		return apperrors.NewValidationError(MsgCheckinMissing, missing)
	}

	submission = submission.Normalize()
	submission.SubmittedAt = helpers.FormatISOTimestamp(s.now())

	lgr = lgr.With().Str("email_fp", helpers.Fingerprint(submission.PrimaryEmail)).Logger()
	return s.forward(ctx, lgr, s.cfg.CheckinURL, submission, forwardMessages{
		unreachable: MsgCheckinUnreachable,
		rejected:    MsgCheckinRejected,
	})
}

// SubmitEoi handles one expression of interest body end to end.
func (s *submissionServiceImpl) SubmitEoi(ctx context.Context, body io.Reader) error {
	lgr := logger.FromContext(ctx, s.logger).With().Str("form", "eoi").Logger()

	if s.cfg.EoiURL == "" {
		lgr.Error().Msg("GOOGLE_SHEETS_EOI_WEBHOOK_URL is not configured")
		return apperrors.NewConfigurationError(MsgEoiNotConfigured)
	}

	record, err := s.decode(body)
	if err != nil {
		lgr.Debug().Err(err).Msg("Rejected malformed EOI body")
		return err
	}

	submission := record.EoiSubmission()
	if missing := validation.MissingFields(models.EoiRules, submission.Field); len(missing) > 0 {
		lgr.Info().Strs("missing", missing).Msg("EOI failed validation")
		return apperrors.NewValidationError(MsgEoiMissing, missing)
	}

	submission = submission.Normalize()
	submission.SubmittedAt = helpers.FormatISOTimestamp(s.now())

	lgr = lgr.With().Str("email_fp", helpers.Fingerprint(submission.Email)).Logger()
	return s.forward(ctx, lgr, s.cfg.EoiURL, submission, forwardMessages{
		unreachable: MsgEoiUnreachable,
		rejected:    MsgEoiRejected,
	})
}

// decode reads at most MaxBodyBytes and parses a single JSON object.
func (s *submissionServiceImpl) decode(body io.Reader) (models.UntrustedRecord, error) {
	if body == nil {
		return nil, apperrors.NewMalformedRequestError(MsgInvalidRequest)
	}
	data, err := io.ReadAll(io.LimitReader(body, s.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrMalformedRequest,
			Message: MsgInvalidRequest,
			Cause:   fmt.Errorf("error reading body: %w", err),
		}
	}
	if int64(len(data)) > s.cfg.MaxBodyBytes {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrMalformedRequest,
			Message: MsgInvalidRequest,
			Cause:   fmt.Errorf("body exceeds %d bytes", s.cfg.MaxBodyBytes),
		}
	}
	record, err := models.DecodeUntrustedRecord(data)
	if err != nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrMalformedRequest,
			Message: MsgInvalidRequest,
			Cause:   err,
		}
	}
	return record, nil
}

func (s *submissionServiceImpl) forward(ctx context.Context, lgr zerolog.Logger, url string, payload any, msgs forwardMessages) error {
	err := s.forwarder.Post(ctx, url, payload)
	if err == nil {
		lgr.Info().Msg("Submission forwarded")
		return nil
	}

	var rejected *webhook.RejectedError
	if errors.As(err, &rejected) {
		lgr.Error().
			Int("status", rejected.StatusCode).
			Str("body", rejected.Body).
			Msg("Unexpected response from the Google Sheets webhook")
		return apperrors.NewUpstreamRejectedError(msgs.rejected, err)
	}

	lgr.Error().Err(err).Msg("Error sending data to the Google Sheets webhook")
	return apperrors.NewUpstreamUnreachableError(msgs.unreachable, err)
}
