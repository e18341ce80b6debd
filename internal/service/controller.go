package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vehicle/finder/internal/client"
	"vehicle/finder/internal/domain"
	"vehicle/finder/internal/domain/event"
	"vehicle/finder/internal/form"
	"vehicle/finder/internal/ranking"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// FailureNotification is shown to the user when a submission fails.
const FailureNotification = "Araç önerileri yüklenirken bir hata oluştu. Lütfen tekrar deneyin."

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not settled yet.
var ErrSubmissionInFlight = errors.New("submission already in flight")

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
)

// Notifier raises the user-facing failure notification.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

type NotifierFunc func(ctx context.Context, message string)

func (f NotifierFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}

// Recorder receives a summary of every settled submission.
type Recorder interface {
	Record(ctx context.Context, e *event.SubmissionSettled) error
}

// Outcome describes how a Submit call ended. When Status is StatusIdle the
// form did not validate and ValidationErrors is set.
type Outcome struct {
	Status           Status
	ValidationErrors domain.ValidationErrors
	Results          []domain.RankedCandidate
	TotalFound       *int64
	Notification     string
	Err              error
}

type Option func(*Controller)

func WithRand(rng ranking.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithRecorders(r ...Recorder) Option {
	return func(c *Controller) { c.recorders = append(c.recorders, r...) }
}

// WithOnComplete registers a callback fired after every submission settles.
func WithOnComplete(fn func()) Option {
	return func(c *Controller) { c.onComplete = fn }
}

// Controller owns the state of one form session and drives submissions.
type Controller struct {
	client    client.RecommenderClient
	rng       ranking.Rand
	notifier  Notifier
	recorders []Recorder

	onComplete func()

	mu         sync.Mutex
	category   domain.VehicleCategory
	form       domain.FormState
	errors     domain.ValidationErrors
	status     Status
	loading    bool
	candidates []domain.VehicleCandidate
	results    []domain.RankedCandidate
	totalFound *int64
}

func NewController(category domain.VehicleCategory, recommender client.RecommenderClient, opts ...Option) *Controller {
	c := &Controller{
		client:     recommender,
		rng:        ranking.DefaultRand,
		notifier:   logNotifier{},
		category:   category,
		errors:     domain.ValidationErrors{},
		status:     StatusIdle,
		candidates: []domain.VehicleCandidate{},
		results:    []domain.RankedCandidate{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetField updates one form field and clears any error shown for it.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.form.Set(name, value); err != nil {
		return err
	}
	c.errors.Clear(name)
	return nil
}

// SetForm replaces the whole form, clearing errors of every field that
// now has a value.
func (c *Controller) SetForm(state domain.FormState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = state
	for _, field := range c.errors.Fields() {
		if v, _ := state.Get(field); v != "" {
			c.errors.Clear(field)
		}
	}
}

func (c *Controller) Category() domain.VehicleCategory {
	return c.category
}

func (c *Controller) Form() domain.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Controller) ValidationErrors() domain.ValidationErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(domain.ValidationErrors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Candidates returns the list exactly as the service returned it.
func (c *Controller) Candidates() []domain.VehicleCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneOrEmpty(c.candidates)
}

func (c *Controller) Results() []domain.RankedCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneOrEmpty(c.results)
}

func (c *Controller) TotalFound() *int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalFound
}

// Submit validates the form and, when valid, performs exactly one request.
// The only error returned is ErrSubmissionInFlight; every other failure is
// reported through the Outcome.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return Outcome{Status: StatusSubmitting}, ErrSubmissionInFlight
	}

	errs, valid := form.Validate(c.form)
	c.errors = errs
	if !valid {
		c.mu.Unlock()
		log.Debugf("Form rejected: %v", errs)
		return Outcome{Status: StatusIdle, ValidationErrors: errs}, nil
	}

	payload := form.BuildRequest(c.category, c.form)
	c.loading = true
	c.status = StatusSubmitting
	c.mu.Unlock()

	started := time.Now()
	resp, callErr := c.call(ctx, payload)

	outcome := c.settle(resp, callErr)

	if outcome.Status == StatusFailure {
		log.Errorf("❌ Recommendation request failed: %v", callErr)
		c.notifier.Notify(ctx, FailureNotification)
	}

	if c.onComplete != nil {
		c.onComplete()
	}

	c.record(ctx, payload, outcome, started)

	return outcome, nil
}

// call converts a panic inside the client into an ordinary failure.
func (c *Controller) call(ctx context.Context, payload domain.RequestPayload) (resp *domain.RecommendationResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("recommendation request panicked: %v", r)
		}
	}()

	resp, err = c.client.Recommend(ctx, payload)
	if err == nil && resp == nil {
		err = errors.New("recommendation client returned no response")
	}
	return resp, err
}

func (c *Controller) settle(resp *domain.RecommendationResponse, callErr error) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false

	if callErr != nil {
		c.status = StatusFailure
		c.candidates = []domain.VehicleCandidate{}
		c.results = []domain.RankedCandidate{}
		c.totalFound = nil
		return Outcome{
			Status:       StatusFailure,
			Results:      []domain.RankedCandidate{},
			Notification: FailureNotification,
			Err:          callErr,
		}
	}

	candidates := resp.Recommendations
	if candidates == nil {
		candidates = []domain.VehicleCandidate{}
	}

	c.status = StatusSuccess
	c.candidates = candidates
	c.results = ranking.Rank(candidates, c.rng)
	c.totalFound = resp.TotalFound

	return Outcome{
		Status:     StatusSuccess,
		Results:    cloneOrEmpty(c.results),
		TotalFound: resp.TotalFound,
	}
}

func (c *Controller) record(ctx context.Context, payload domain.RequestPayload, outcome Outcome, started time.Time) {
	if len(c.recorders) == 0 {
		return
	}

	e := &event.SubmissionSettled{
		ID:          uuid.NewString(),
		Payload:     payload,
		Status:      string(outcome.Status),
		ResultCount: len(outcome.Results),
		TotalFound:  outcome.TotalFound,
		StartedAt:   started.UTC(),
		DurationMS:  time.Since(started).Milliseconds(),
	}
	if outcome.Err != nil {
		e.Error = outcome.Err.Error()
	}

	for _, r := range c.recorders {
		if err := r.Record(ctx, e); err != nil {
			log.Warnf("⚠️ Failed to record submission %s: %v", e.ID, err)
		}
	}
}

// cloneOrEmpty copies s and never returns nil.
func cloneOrEmpty[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

type logNotifier struct{}

func (logNotifier) Notify(_ context.Context, message string) {
	log.Warnf("🔔 %s", message)
}
