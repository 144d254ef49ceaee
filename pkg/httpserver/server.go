package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/pkg/failure"
)

const (
	_defaultAddr            = ":3000"
	_defaultReadTimeout     = 10 * time.Second
	_defaultWriteTimeout    = 30 * time.Second
	_defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	App    *fiber.App
	notify chan error

	address         string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

func New(opts ...Option) *Server {
	s := &Server{
		App:             nil,
		notify:          make(chan error, 1),
		address:         _defaultAddr,
		readTimeout:     _defaultReadTimeout,
		writeTimeout:    _defaultWriteTimeout,
		shutdownTimeout: _defaultShutdownTimeout,
	}

	// Custom options
	for _, opt := range opts {
		opt(s)
	}

	if s.App == nil {
		s.App = fiber.New(fiber.Config{
			Prefork:               false,
			DisableStartupMessage: true,
			ReadTimeout:           s.readTimeout,
			WriteTimeout:          s.writeTimeout,
			IdleTimeout:           s.shutdownTimeout,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
			ErrorHandler:          ErrorHandler,
		})
	}

	return s
}

// ErrorHandler renders errors that escape a handler as {"error": "..."}.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) Address() string {
	return s.address
}

func (s *Server) Start() {
	go func() {
		s.notify <- s.App.Listen(s.address)
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	if err := s.App.ShutdownWithTimeout(s.shutdownTimeout); err != nil {
		return fmt.Errorf("httpserver: shutdown error: %w", err)
	}

	return nil
}
