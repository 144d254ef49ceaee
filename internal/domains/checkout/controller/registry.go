package controller

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/savioruz/pexiblock-checkout/internal/domains/payments/service"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
	"github.com/savioruz/pexiblock-checkout/pkg/metrics"
)

// Registry keeps one Controller per browser session.
type Registry struct {
	service   service.PaymentService
	validator *validator.Validate
	logger    logger.Interface
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*Controller
}

func NewRegistry(s service.PaymentService, v *validator.Validate, l logger.Interface) *Registry {
	return &Registry{
		service:   s,
		validator: v,
		logger:    l,
		now:       time.Now,
		sessions:  make(map[string]*Controller),
	}
}

func (r *Registry) Get(id string) (*Controller, bool) {
	if id == "" {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.sessions[id]

	return c, ok
}

// Create registers a new session and returns its id.
func (r *Registry) Create() (string, *Controller) {
	id := uuid.NewString()
	c := newController(r.service, r.validator, r.logger, r.now)

	r.mu.Lock()
	r.sessions[id] = c
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	r.mu.Unlock()

	return id, c
}

// Resolve returns the session for id, creating one when id is unknown.
func (r *Registry) Resolve(id string) (string, *Controller, bool) {
	if c, ok := r.Get(id); ok {
		return id, c, false
	}

	id, c := r.Create()

	return id, c, true
}

// EvictIdle drops sessions not touched for longer than maxIdle. Sessions with
// a request in flight are kept.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0

	for id, c := range r.sessions {
		lastSeen, loading := c.idleSince()
		if loading || !lastSeen.Before(cutoff) {
			continue
		}

		delete(r.sessions, id)

		evicted++
	}

	metrics.ActiveSessions.Set(float64(len(r.sessions)))

	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
