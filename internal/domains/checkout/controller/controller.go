package controller

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/pexiblock-checkout/internal/domains/checkout/dto"
	paymentDto "github.com/savioruz/pexiblock-checkout/internal/domains/payments/dto"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/service"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/savioruz/pexiblock-checkout/pkg/failure"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
	"github.com/savioruz/pexiblock-checkout/pkg/validation"
)

const (
	identifier = "controller - checkout - %s"
)

// Controller drives one checkout view between the form and the hosted
// payment page. Each submission gets an attempt id; a result is applied only
// while its attempt is still the current one.
type Controller struct {
	service   service.PaymentService
	validator *validator.Validate
	logger    logger.Interface
	now       func() time.Time

	mu       sync.Mutex
	state    dto.ViewState
	attempt  uint64
	lastSeen time.Time
}

func New(s service.PaymentService, v *validator.Validate, l logger.Interface) *Controller {
	return newController(s, v, l, time.Now)
}

func newController(s service.PaymentService, v *validator.Validate, l logger.Interface, now func() time.Time) *Controller {
	return &Controller{
		service:   s,
		validator: v,
		logger:    l,
		now:       now,
		state:     dto.InitialState(),
		lastSeen:  now(),
	}
}

// State returns a snapshot of the current view.
func (c *Controller) State() dto.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeen = c.now()

	return c.state
}

// Submit validates the form and, when valid, asks the payment service for a
// session. Validation failures and concurrent submissions return a failure
// error without contacting the backend and without touching the view.
func (c *Controller) Submit(ctx context.Context, form dto.CheckoutForm) (dto.ViewState, error) {
	if err := c.validator.Struct(form); err != nil {
		c.logger.Warn(identifier+" - validation error: %v", "Submit", err)

		if validation.MissingRequired(err) {
			return c.State(), failure.BadRequestFromString(constant.MessageRequiredFields)
		}

		return c.State(), failure.BadRequestFromString(validation.Describe(err))
	}

	attempt, err := c.begin()
	if err != nil {
		return c.State(), err
	}

	result := c.service.CreatePayment(ctx, form.ToPaymentRequest())

	return c.complete(attempt, result), nil
}

// Reset returns to the empty form from any state. A request still in flight
// is abandoned and its result will be discarded, but the call itself still
// reaches the backend, so a resubmit right away can leave two sessions open there.
func (c *Controller) Reset() dto.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attempt++
	c.state = dto.InitialState()
	c.lastSeen = c.now()

	return c.state
}

func (c *Controller) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeen = c.now()

	if c.state.Loading {
		return 0, failure.Conflict(constant.MessageSubmissionActive)
	}

	// Leaving the checkout view is only possible through Reset.
	if c.state.Mode == dto.ViewCheckout {
		return 0, failure.Conflict(constant.MessageCheckoutActive)
	}

	c.attempt++
	c.state.Error = ""
	c.state.Loading = true

	return c.attempt, nil
}

func (c *Controller) complete(attempt uint64, result paymentDto.PaymentResult) dto.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeen = c.now()

	if attempt != c.attempt {
		c.logger.Debug(identifier+" - discarding stale result for attempt %d, current is %d", "Submit", attempt, c.attempt)

		return c.state
	}

	if result.OK() {
		c.state = dto.ViewState{
			Mode:       dto.ViewCheckout,
			PaymentURL: result.Session.PaymentURL,
			Reference:  result.Session.Reference,
		}

		return c.state
	}

	c.state = dto.ViewState{Mode: dto.ViewForm}
	if result.Failure != nil {
		c.state.Error = result.Failure.ErrorMessage
	}

	return c.state
}

func (c *Controller) idleSince() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastSeen, c.state.Loading
}
