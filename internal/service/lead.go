package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"aether/internal/model"
	"aether/internal/observability/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingRequiredField is returned when name, phone or email is
	// absent or empty. Checked before phone format.
	ErrMissingRequiredField = errors.New("missing required fields")

	// ErrInvalidPhoneFormat is returned when the phone is present but not
	// exactly 10 digits
	ErrInvalidPhoneFormat = errors.New("invalid phone")

	// ErrLeadNotRecorded is returned when the sink rejects an accepted
	// lead and the service is configured to require sink acknowledgement
	ErrLeadNotRecorded = errors.New("lead not recorded")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// LeadSink receives accepted lead records. Implemented by the structured
// log sink and the PostgreSQL repository.
type LeadSink interface {
	SaveLead(ctx context.Context, lead *model.Lead) error
}

// LeadService validates lead submissions and forwards accepted records to
// the configured sink.
type LeadService struct {
	sink       LeadSink
	requireAck bool
	log        *logrus.Logger
	metrics    *metrics.SiteMetrics
}

// NewLeadService creates a lead service. When requireAck is true a sink
// failure fails the submission (at-least-once delivery); otherwise the
// failure is logged and counted and the caller still gets an
// acknowledgement (best-effort).
func NewLeadService(sink LeadSink, requireAck bool, log *logrus.Logger, m *metrics.SiteMetrics) *LeadService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LeadService{
		sink:       sink,
		requireAck: requireAck,
		log:        log,
		metrics:    m,
	}
}

// Submit validates a lead submission and hands the accepted record to the
// sink. Validation fails fast in a fixed order: required fields first,
// then phone format. Resubmission of identical data is a new lead.
func (s *LeadService) Submit(ctx context.Context, req *model.LeadRequest) (*model.Lead, error) {
	phone := string(req.Phone)

	if req.Name == "" || phone == "" || req.Email == "" {
		s.metrics.ObserveLead("rejected", "missing_field")
		return nil, ErrMissingRequiredField
	}

	if !phonePattern.MatchString(phone) {
		s.metrics.ObserveLead("rejected", "invalid_phone")
		return nil, ErrInvalidPhoneFormat
	}

	lead := &model.Lead{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Phone:      phone,
		Email:      req.Email,
		VisitDate:  req.Date,
		VisitTime:  req.Time,
		Message:    req.Message,
		ReceivedAt: time.Now().UTC(),
	}

	if err := s.sink.SaveLead(ctx, lead); err != nil {
		s.metrics.ObserveSinkFailure()
		s.log.WithError(err).WithField("lead_id", lead.ID).Error("Failed to record lead")
		if s.requireAck {
			s.metrics.ObserveLead("rejected", "sink_failure")
			return nil, fmt.Errorf("%w: %v", ErrLeadNotRecorded, err)
		}
	}

	s.metrics.ObserveLead("accepted", "")
	return lead, nil
}

// LogSink writes accepted leads as structured log entries. This is the
// original sink of the site; the PostgreSQL repository replaces the
// "replace with DB/CRM webhook" placeholder.
type LogSink struct {
	log *logrus.Logger
}

// NewLogSink creates a log sink
func NewLogSink(log *logrus.Logger) *LogSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogSink{log: log}
}

// SaveLead implements LeadSink
func (s *LogSink) SaveLead(_ context.Context, lead *model.Lead) error {
	s.log.WithFields(logrus.Fields{
		"lead_id": lead.ID,
		"name":    lead.Name,
		"phone":   lead.Phone,
		"email":   lead.Email,
		"date":    lead.VisitDate,
		"time":    lead.VisitTime,
		"message": lead.Message,
	}).Info("Lead received")
	return nil
}

// MultiSink fans a lead out to every sink, returning the first error
// after all sinks have been tried.
type MultiSink []LeadSink

// SaveLead implements LeadSink
func (m MultiSink) SaveLead(ctx context.Context, lead *model.Lead) error {
	var firstErr error
	for _, sink := range m {
		if err := sink.SaveLead(ctx, lead); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
