package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/randalmurphal/mvnsettings/problem"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
type ErrorMessenger interface {
	// BuildingFailedMessage returns the message and suggestion when the
	// effective settings could not be built.
	BuildingFailedMessage(problems int) (message, suggestion string)

	// NotFoundMessage returns the message and suggestion for a missing file.
	NotFoundMessage(path string) (message, suggestion string)

	// PermissionDeniedMessage returns the message and suggestion for an
	// unreadable or unwritable file.
	PermissionDeniedMessage(path string) (message, suggestion string)

	// NoProjectMessage returns the message and suggestion when no project
	// directory is available.
	NoProjectMessage() (message, suggestion string)

	// ConnectionErrorMessage returns the message and suggestion for an
	// unreachable notification endpoint.
	ConnectionErrorMessage(url string) (message, suggestion string)

	// InvalidOutputMessage returns the message and suggestion for an
	// unknown output format.
	InvalidOutputMessage(format string) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) BuildingFailedMessage(problems int) (string, string) {
	noun := "problems"
	if problems == 1 {
		noun = "problem"
	}
	return fmt.Sprintf("The effective settings could not be built (%d %s).", problems, noun),
		"Fix the reported problems, or run with --skip-project to ignore .mvn/settings.xml."
}

func (m DefaultMessenger) NotFoundMessage(path string) (string, string) {
	return fmt.Sprintf("Settings file %s does not exist.", path),
		"Check the path, or omit the flag to use the default location."
}

func (m DefaultMessenger) PermissionDeniedMessage(path string) (string, string) {
	return fmt.Sprintf("Cannot access %s.", path),
		"Check the file permissions."
}

func (m DefaultMessenger) NoProjectMessage() (string, string) {
	return "No project directory is set.",
		"Run this command from the project root or pass --project."
}

func (m DefaultMessenger) ConnectionErrorMessage(url string) (string, string) {
	return fmt.Sprintf("Cannot deliver notifications to %s", url),
		"Check that:\n  - The endpoint is running\n  - The URL is correct\n  - Your network connection is working"
}

func (m DefaultMessenger) InvalidOutputMessage(format string) (string, string) {
	return fmt.Sprintf("Unknown output format %q.", format),
		"Use one of: xml, yaml."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapBuildingError turns a *problem.BuildingError into a CLIError listing
// every problem. Other errors are returned unchanged.
func WrapBuildingError(err error, opts ...Option) error {
	var be *problem.BuildingError
	if !errors.As(err, &be) {
		return err
	}

	lines := make([]string, 0, len(be.Problems))
	for _, p := range be.Problems {
		lines = append(lines, "  "+p.String())
	}
	msg, suggestion := getMessenger(opts).BuildingFailedMessage(len(be.Problems))
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrSettingsInvalid, err),
		Message:    msg,
		Details:    strings.Join(lines, "\n"),
		Suggestion: suggestion,
	}
}

// WrapFileError wraps file access errors for path with helpful guidance.
func WrapFileError(err error, path string, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		msg, suggestion := messenger.NotFoundMessage(path)
		return &CLIError{
			Err:        fmt.Errorf("%w: %w", ErrSettingsNotFound, err),
			Message:    msg,
			Suggestion: suggestion,
		}
	case errors.Is(err, fs.ErrPermission):
		msg, suggestion := messenger.PermissionDeniedMessage(path)
		return &CLIError{
			Err:        fmt.Errorf("%w: %w", ErrPermissionDenied, err),
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	}
	return err
}

// WrapConnectionError wraps connection-related errors with helpful guidance.
func WrapConnectionError(err error, url string, opts ...Option) error {
	if err == nil {
		return nil
	}
	if !IsConnectionError(err) {
		return err
	}

	msg, suggestion := getMessenger(opts).ConnectionErrorMessage(url)
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrConnectionFailed, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// NewNoProjectError creates an error for commands that need a project.
func NewNoProjectError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NoProjectMessage()
	return &CLIError{
		Err:        ErrNoProject,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewInvalidOutputError creates an error for an unknown output format.
func NewInvalidOutputError(format string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).InvalidOutputMessage(format)
	return &CLIError{
		Err:        ErrInvalidOutput,
		Message:    msg,
		Suggestion: suggestion,
	}
}
