package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrNoProject indicates the project directory could not be determined.
	ErrNoProject = errors.New("no project directory")

	// ErrSettingsInvalid indicates the effective settings could not be built.
	ErrSettingsInvalid = errors.New("invalid settings")

	// ErrSettingsNotFound indicates a settings file does not exist.
	ErrSettingsNotFound = errors.New("settings file not found")

	// ErrPermissionDenied indicates a file could not be accessed.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConnectionFailed indicates a notification endpoint is unreachable.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInvalidOutput indicates an unknown output format.
	ErrInvalidOutput = errors.New("invalid output format")
)
