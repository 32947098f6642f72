package errors

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/randalmurphal/mvnsettings/problem"
)

// IsBuildingError checks if an error reports invalid settings.
func IsBuildingError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrSettingsInvalid) || errors.Is(err, problem.ErrBuildingFailed)
}

// IsConnectionError checks if an error is connection-related.
// This includes TLS errors, timeouts, and network connectivity issues.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrConnectionFailed) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	// Network connectivity
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return true
	}
	// TLS/certificate errors
	if strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") {
		return true
	}
	// Timeout errors
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// IsNotFound checks if an error reports a missing settings file.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrSettingsNotFound) || errors.Is(err, fs.ErrNotExist)
}

// IsPermissionError checks if an error is permission-related.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrPermissionDenied) || errors.Is(err, fs.ErrPermission)
}
