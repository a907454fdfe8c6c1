package controller

//go:generate mockgen -destination=mock/mock_service.go -package=mockcontroller -source=service.go

import (
	"sync"

	apperr "github.com/hostplay/input-bridge/internal/errors"
	"github.com/hostplay/input-bridge/internal/hostbridge"
	"github.com/hostplay/input-bridge/internal/input"
	"github.com/hostplay/input-bridge/internal/keyboard"
)

// Service is a controller session: the entry points the host bridge uses to
// push events in and the game uses to request controllers. It replaces the
// ambient "current controller" global with an explicit value, so independent
// sessions can coexist (and be tested) in one process.
type Service interface {
	// RequestController builds a controller, announces it to the host as
	// the primary controller and makes it the session's main controller.
	// The last request wins.
	RequestController(t input.Type, opts *input.Options) (*input.Controller, error)

	// AdditionalController builds a controller and announces it to the host
	// as a secondary type. The main controller is untouched.
	AdditionalController(t input.Type, opts *input.Options) (*input.Controller, error)

	// Trigger injects an event into the main controller. Intended for the
	// host bridge, but callable by games for test or simulation purposes.
	Trigger(event string, data ...any) error

	// MainController returns the active main controller, or nil before the
	// first request
	MainController() *input.Controller
}

// Config holds the session's external collaborators.
type Config struct {
	// Notifier announces controller-type selections to the host
	Notifier hostbridge.Notifier

	// Keyboard is the default bridge injected when a caller enables
	// keyboard input without supplying one. Optional.
	Keyboard keyboard.Bridge
}

type service struct {
	mu       sync.Mutex
	notifier hostbridge.Notifier
	keyboard keyboard.Bridge
	main     *input.Controller
}

// NewService creates a controller session
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config is required")
	}
	if cfg.Notifier == nil {
		return nil, apperr.InvalidArgument("host bridge notifier is required")
	}

	return &service{
		notifier: cfg.Notifier,
		keyboard: cfg.Keyboard,
	}, nil
}

// RequestController implements Service
func (s *service) RequestController(t input.Type, opts *input.Options) (*input.Controller, error) {
	c, err := input.New(t, s.withDefaultKeyboard(opts))
	if err != nil {
		return nil, err
	}

	s.notifier.AnnouncePrimaryController(string(t))

	s.mu.Lock()
	s.main = c
	s.mu.Unlock()

	return c, nil
}

// AdditionalController implements Service
func (s *service) AdditionalController(t input.Type, opts *input.Options) (*input.Controller, error) {
	c, err := input.New(t, s.withDefaultKeyboard(opts))
	if err != nil {
		return nil, err
	}

	s.notifier.AnnounceAdditionalController(string(t))

	return c, nil
}

// Trigger implements Service
func (s *service) Trigger(event string, data ...any) error {
	s.mu.Lock()
	main := s.main
	s.mu.Unlock()

	if main == nil {
		return apperr.NoControllerPresent()
	}

	main.Trigger(event, data...)
	return nil
}

// MainController implements Service
func (s *service) MainController() *input.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.main
}

// withDefaultKeyboard fills in the session's keyboard bridge when the caller
// enables keyboard input without supplying one.
func (s *service) withDefaultKeyboard(opts *input.Options) *input.Options {
	if opts == nil || !opts.EnableKeyboard || opts.Keyboard != nil || s.keyboard == nil {
		return opts
	}
	filled := *opts
	filled.Keyboard = s.keyboard
	return &filled
}
