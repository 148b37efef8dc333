package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/ppiankov/leadscore/internal/cache"
	"github.com/ppiankov/leadscore/internal/classify"
	"github.com/ppiankov/leadscore/internal/export"
	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/score"
	"github.com/ppiankov/leadscore/internal/stats"
	"github.com/ppiankov/leadscore/internal/store"
	"github.com/ppiankov/leadscore/internal/validate"
)

// Session owns the leads entered during one run and the components that
// validate, classify and score them
type Session struct {
	store      *store.Store
	classifier *classify.Classifier
	scorer     *score.Scorer
	config     *model.Config
	log        zerolog.Logger
	now        func() time.Time
	newID      func() string
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDs overrides lead ID generation
func WithIDs(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// New creates a session from the configuration. A nil config uses defaults.
func New(cfg *model.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	var classifierOpts []classify.Option
	if cfg.Cache.Enabled {
		classifierOpts = append(classifierOpts, classify.WithCache(cache.NewMemoryCache(cfg.Cache.TTL)))
	}

	s := &Session{
		store:      store.New(),
		classifier: classify.NewClassifier(classifierOpts...),
		scorer:     score.NewScorer(&cfg.Scoring),
		config:     cfg,
		log:        zerolog.Nop(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates, classifies and scores a new lead, then appends it.
// An empty domain is derived from the e-mail before validation.
func (s *Session) Add(ctx context.Context, in model.LeadInput) (model.Lead, error) {
	if err := ctx.Err(); err != nil {
		return model.Lead{}, eris.Wrap(err, "add lead")
	}

	filled := validate.FillDomain(in)
	if filled.Domain != in.Domain {
		s.log.Debug().Str("email", in.Email).Str("domain", filled.Domain).Msg("domain derived from e-mail")
	}

	if err := validate.Form(filled); err != nil {
		s.log.Debug().Err(err).Msg("lead rejected")
		return model.Lead{}, err
	}

	lead := s.Build(filled)
	s.store.Add(lead)

	s.log.Info().
		Str("id", lead.ID).
		Str("company", lead.Company).
		Str("industry", lead.Industry.String()).
		Int("score", lead.ConfidenceScore).
		Msg("lead added")

	return lead, nil
}

// Build scores an input without validating or storing it
func (s *Session) Build(in model.LeadInput) model.Lead {
	lead := model.Lead{
		ID:           s.newID(),
		Company:      in.Company,
		Domain:       in.Domain,
		Email:        in.Email,
		IsEmailValid: validate.IsValidEmail(in.Email),
		Industry:     s.classifier.Classify(in.Domain),
		CreatedAt:    s.now(),
	}
	lead.ConfidenceScore = s.scorer.Score(lead)
	return lead
}

// Explain returns the score breakdown for a stored lead
func (s *Session) Explain(id string) (model.ScoreBreakdown, error) {
	lead, err := s.store.Get(id)
	if err != nil {
		return model.ScoreBreakdown{}, err
	}
	return s.scorer.Calculate(lead), nil
}

// Delete removes one lead by ID
func (s *Session) Delete(id string) error {
	if !s.store.Remove(id) {
		return eris.Wrapf(store.ErrLeadNotFound, "delete %s", id)
	}
	s.log.Info().Str("id", id).Msg("lead deleted")
	return nil
}

// Leads returns the current leads in entry order
func (s *Session) Leads() []model.Lead {
	return s.store.List()
}

// Len returns the number of leads in the session
func (s *Session) Len() int {
	return s.store.Len()
}

// Stats aggregates the current leads
func (s *Session) Stats() stats.Summary {
	return stats.ComputeWithThreshold(s.store.List(), s.config.Scoring.HighQualityThreshold)
}

// Export writes the current leads to the sink as CSV
func (s *Session) Export(sink export.Sink) error {
	return s.ExportAs(export.FormatCSV, sink)
}

// ExportAs writes the current leads to the sink in the given format
func (s *Session) ExportAs(f export.Format, sink export.Sink) error {
	leads := s.store.List()
	if err := export.ExportAs(leads, f, sink); err != nil {
		return eris.Wrap(err, "export leads")
	}
	s.log.Info().Int("leads", len(leads)).Str("format", string(f)).Msg("leads exported")
	return nil
}
