// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors for common scenarios:
//   - ErrNoProject: No project directory is available
//   - ErrSettingsInvalid: The effective settings could not be built
//   - ErrSettingsNotFound: A settings file does not exist
//   - ErrPermissionDenied: A file could not be accessed
//   - ErrConnectionFailed: A notification endpoint is unreachable
//   - ErrInvalidOutput: Unknown output format
//
// Example usage:
//
//	handle, err := injector.Resolve(ctx, req)
//	if err != nil {
//	    return errors.WrapBuildingError(err)
//	}
//
//	// Check error types
//	if errors.IsBuildingError(err) {
//	    os.Exit(2)
//	}
package errors
