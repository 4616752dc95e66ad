package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/communiteer/welcomehub/internal/pkg/i18n"
	"github.com/communiteer/welcomehub/internal/pkg/validation"
)

// Default timer durations
const (
	DefaultBannerDuration = 6 * time.Second
	DefaultCloseDelay     = 1500 * time.Millisecond
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a request is pending.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrInvalid is returned when local validation fails. The message is in the snapshot.
	ErrInvalid = errors.New("form has invalid fields")
	// ErrSubmitFailed is returned when the server rejected the submission or was unreachable.
	ErrSubmitFailed = errors.New("submission failed")
	// ErrDiscarded is returned when the form was closed or reset before the response arrived.
	ErrDiscarded = errors.New("response discarded")
)

// Status is the submission state of a form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Spec describes one kind of form to the generic controller.
type Spec[T any] struct {
	// Path is the endpoint path the payload is posted to.
	Path string
	// Rules are evaluated in order; the first failure is shown.
	Rules []validation.Rule
	// New returns the default field values.
	New func() T
	// Field reads a named field.
	Field func(values T, key string) string
	// Set writes a named field and applies dependent-field effects.
	Set func(values *T, key, value string) error
	// Payload builds the outbound payload for lang.
	Payload func(values T, lang string) any
	// Lang assigns the language field of values, if the form has one.
	Lang func(values *T, lang string)
	// SuccessKey is the catalog key of the success banner.
	SuccessKey string
}

// Options tune a controller. Zero values pick defaults.
type Options struct {
	Lang           string
	Catalog        *i18n.Catalog
	Scheduler      Scheduler
	BannerDuration time.Duration
	CloseDelay     time.Duration
}

// Snapshot is a consistent copy of the form state.
type Snapshot[T any] struct {
	Values         T
	Status         Status
	Error          string
	SuccessVisible bool
	SuccessMessage string
	Lang           string
}

// Controller owns the state of one open form.
type Controller[T any] struct {
	spec     Spec[T]
	endpoint Endpoint
	catalog  *i18n.Catalog
	sched    Scheduler
	banner   time.Duration
	delay    time.Duration

	mu             sync.Mutex
	lang           string
	values         T
	status         Status
	errMsg         string
	successVisible bool
	inFlight       bool
	generation     uint64
	bannerTimer    Timer
	bannerSeq      uint64
	closeTimer     Timer
	closeSeq       uint64

	onChange []func(Snapshot[T])
	onClose  []func()
}

// New creates a controller for spec posting through endpoint.
func New[T any](spec Spec[T], endpoint Endpoint, opts Options) *Controller[T] {
	if opts.Catalog == nil {
		opts.Catalog = i18n.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.BannerDuration <= 0 {
		opts.BannerDuration = DefaultBannerDuration
	}
	if opts.CloseDelay <= 0 {
		opts.CloseDelay = DefaultCloseDelay
	}
	if opts.Lang == "" {
		opts.Lang = i18n.BaseLocale
	}

	c := &Controller[T]{
		spec:     spec,
		endpoint: endpoint,
		catalog:  opts.Catalog,
		sched:    opts.Scheduler,
		banner:   opts.BannerDuration,
		delay:    opts.CloseDelay,
		lang:     opts.Lang,
		status:   StatusIdle,
	}
	c.values = c.defaults()
	return c
}

// OnChange registers an observer called after every state change.
func (c *Controller[T]) OnChange(f func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, f)
}

// OnClose registers a hook called when the form closes itself after a
// successful submission.
func (c *Controller[T]) OnClose(f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = append(c.onClose, f)
}

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Lang returns the form language.
func (c *Controller[T]) Lang() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// SetLang switches the language used for messages and the payload.
func (c *Controller[T]) SetLang(lang string) {
	c.mu.Lock()
	c.lang = lang
	if c.spec.Lang != nil {
		c.spec.Lang(&c.values, lang)
	}
	c.mu.Unlock()
	c.notify()
}

// UpdateField sets one field and applies its dependent-field effects. Any
// previously shown error is cleared.
func (c *Controller[T]) UpdateField(key, value string) error {
	c.mu.Lock()
	if err := c.spec.Set(&c.values, key, value); err != nil {
		c.mu.Unlock()
		return err
	}
	c.errMsg = ""
	if c.status == StatusFailed {
		c.status = StatusIdle
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

// Validate returns the localized message of the first failing rule, or ""
// when the form is valid.
func (c *Controller[T]) Validate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller[T]) validateLocked() string {
	values := c.values
	rule, failed := validation.FirstFailure(c.spec.Rules, func(key string) string {
		return c.spec.Field(values, key)
	})
	if !failed {
		return ""
	}
	return c.catalog.Message(c.lang, rule.Message)
}

// Submit validates the form and posts it. Only one submission may be in
// flight; effects of a response that arrives after Close or Reset are
// dropped.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if msg := c.validateLocked(); msg != "" {
		c.errMsg = msg
		c.status = StatusFailed
		c.mu.Unlock()
		c.notify()
		return ErrInvalid
	}

	payload := c.spec.Payload(c.values, c.lang)
	generation := c.generation
	c.inFlight = true
	c.status = StatusSubmitting
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()

	result, err := c.endpoint.Post(ctx, c.spec.Path, payload)

	c.mu.Lock()
	c.inFlight = false
	if generation != c.generation {
		c.mu.Unlock()
		return ErrDiscarded
	}

	if err != nil || !result.OK() {
		msg := result.Error
		if err != nil || msg == "" {
			msg = c.catalog.Message(c.lang, "form.error.generic")
		}
		c.errMsg = msg
		c.status = StatusFailed
		c.mu.Unlock()
		c.notify()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
		}
		return fmt.Errorf("%w: status %d", ErrSubmitFailed, result.StatusCode)
	}

	c.values = c.defaults()
	c.status = StatusSucceeded
	c.successVisible = true
	c.scheduleLocked()
	c.mu.Unlock()
	c.notify()
	return nil
}

// Reset restores the defaults, keeping the language, and cancels timers.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	c.stopTimersLocked()
	c.values = c.defaults()
	c.clearLocked()
	c.mu.Unlock()
	c.notify()
}

// Close tears down transient UI state. Field values are kept; a pending
// request is not cancelled but its response is ignored.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.stopTimersLocked()
	c.clearLocked()
	c.mu.Unlock()
	c.notify()
}

func (c *Controller[T]) clearLocked() {
	c.errMsg = ""
	c.status = StatusIdle
	c.successVisible = false
	c.generation++
}

func (c *Controller[T]) defaults() T {
	values := c.spec.New()
	if c.spec.Lang != nil {
		c.spec.Lang(&values, c.lang)
	}
	return values
}

func (c *Controller[T]) scheduleLocked() {
	c.stopTimersLocked()

	c.bannerSeq++
	bannerSeq := c.bannerSeq
	c.bannerTimer = c.sched.AfterFunc(c.banner, func() {
		c.mu.Lock()
		if bannerSeq != c.bannerSeq {
			c.mu.Unlock()
			return
		}
		c.bannerTimer = nil
		c.successVisible = false
		c.mu.Unlock()
		c.notify()
	})

	c.closeSeq++
	closeSeq := c.closeSeq
	c.closeTimer = c.sched.AfterFunc(c.delay, func() {
		c.mu.Lock()
		if closeSeq != c.closeSeq {
			c.mu.Unlock()
			return
		}
		c.closeTimer = nil
		hooks := append([]func(){}, c.onClose...)
		c.mu.Unlock()
		for _, hook := range hooks {
			hook()
		}
	})
}

// stopTimersLocked cancels both timers. Bumping the sequence also defeats a
// callback that already fired and is waiting on the lock.
func (c *Controller[T]) stopTimersLocked() {
	if c.bannerTimer != nil {
		c.bannerTimer.Stop()
		c.bannerTimer = nil
	}
	c.bannerSeq++
	if c.closeTimer != nil {
		c.closeTimer.Stop()
		c.closeTimer = nil
	}
	c.closeSeq++
}

// TimersPending reports whether the banner and close timers are armed.
func (c *Controller[T]) TimersPending() (banner, autoClose bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bannerTimer != nil, c.closeTimer != nil
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	s := Snapshot[T]{
		Values:         c.values,
		Status:         c.status,
		Error:          c.errMsg,
		SuccessVisible: c.successVisible,
		Lang:           c.lang,
	}
	if c.successVisible {
		s.SuccessMessage = c.catalog.Message(c.lang, c.spec.SuccessKey)
	}
	return s
}

func (c *Controller[T]) notify() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	observers := append([]func(Snapshot[T]){}, c.onChange...)
	c.mu.Unlock()
	for _, f := range observers {
		f(snap)
	}
}
