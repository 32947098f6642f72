package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/randalmurphal/mvnsettings/problem"
)

func TestCLIError(t *testing.T) {
	err := &CLIError{
		Err:        ErrSettingsInvalid,
		Message:    "Test message",
		Suggestion: "Test suggestion",
		Details:    "Test details",
	}

	// Check error message format
	errStr := err.Error()
	if !strings.Contains(errStr, "Test message") {
		t.Errorf("expected error to contain 'Test message', got %q", errStr)
	}
	if !strings.Contains(errStr, "Test details") {
		t.Errorf("expected error to contain 'Test details', got %q", errStr)
	}
	if !strings.Contains(errStr, "Test suggestion") {
		t.Errorf("expected error to contain 'Test suggestion', got %q", errStr)
	}

	// Check unwrap
	if !errors.Is(err, ErrSettingsInvalid) {
		t.Error("expected error to unwrap to ErrSettingsInvalid")
	}
}

func TestCLIError_MinimalFields(t *testing.T) {
	err := &CLIError{
		Err:     ErrConnectionFailed,
		Message: "Connection failed",
	}

	errStr := err.Error()
	if errStr != "Connection failed" {
		t.Errorf("expected 'Connection failed', got %q", errStr)
	}
}

func buildingError(n int) *problem.BuildingError {
	be := &problem.BuildingError{}
	for i := 0; i < n; i++ {
		be.Problems = append(be.Problems, problem.Problem{
			Severity: problem.SeverityError,
			Message:  fmt.Sprintf("problem %d", i),
			Source:   "/p/.mvn/settings.xml",
			Line:     -1,
			Column:   -1,
		})
	}
	return be
}

func TestWrapBuildingError(t *testing.T) {
	cause := buildingError(2)
	wrapped := WrapBuildingError(fmt.Errorf("resolve: %w", cause))

	var cliErr *CLIError
	if !errors.As(wrapped, &cliErr) {
		t.Fatalf("expected *CLIError, got %T", wrapped)
	}
	if !strings.Contains(cliErr.Message, "2 problems") {
		t.Errorf("Message = %q, want it to count 2 problems", cliErr.Message)
	}
	if !strings.Contains(cliErr.Details, "problem 0") || !strings.Contains(cliErr.Details, "problem 1") {
		t.Errorf("Details = %q, want both problems listed", cliErr.Details)
	}
	if !errors.Is(wrapped, ErrSettingsInvalid) {
		t.Error("expected wrapped error to match ErrSettingsInvalid")
	}
	if !errors.Is(wrapped, problem.ErrBuildingFailed) {
		t.Error("expected wrapped error to match problem.ErrBuildingFailed")
	}

	var be *problem.BuildingError
	if !errors.As(wrapped, &be) || be != cause {
		t.Error("expected the original BuildingError to be reachable")
	}
}

func TestWrapBuildingError_Singular(t *testing.T) {
	wrapped := WrapBuildingError(buildingError(1))
	if !strings.Contains(wrapped.Error(), "(1 problem)") {
		t.Errorf("expected singular wording, got %q", wrapped.Error())
	}
}

func TestWrapBuildingError_Passthrough(t *testing.T) {
	other := errors.New("some other error")
	if got := WrapBuildingError(other); got != other {
		t.Errorf("expected passthrough, got %v", got)
	}
	if got := WrapBuildingError(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestWrapFileError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   error
		wantNil    bool
		wantSubstr string
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:       "missing file",
			err:        &fs.PathError{Op: "open", Path: "/x/settings.xml", Err: fs.ErrNotExist},
			wantType:   ErrSettingsNotFound,
			wantSubstr: "does not exist",
		},
		{
			name:       "permission denied",
			err:        &fs.PathError{Op: "open", Path: "/x/settings.xml", Err: fs.ErrPermission},
			wantType:   ErrPermissionDenied,
			wantSubstr: "Cannot access /x/settings.xml",
		},
		{
			name:     "other error passthrough",
			err:      errors.New("some other error"),
			wantType: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapFileError(tt.err, "/x/settings.xml")

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("expected nil, got %v", wrapped)
				}
				return
			}

			if tt.wantType == nil {
				if wrapped != tt.err {
					t.Errorf("expected passthrough, got wrapped error")
				}
				return
			}

			if !errors.Is(wrapped, tt.wantType) {
				t.Errorf("expected error to be %v, got %v", tt.wantType, wrapped)
			}
			if !strings.Contains(wrapped.Error(), tt.wantSubstr) {
				t.Errorf("expected error to contain %q, got %q", tt.wantSubstr, wrapped.Error())
			}
		})
	}
}

func TestWrapConnectionError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wrapped bool
	}{
		{"connection refused", errors.New("dial tcp 127.0.0.1:9: connection refused"), true},
		{"tls", errors.New("x509: certificate signed by unknown authority"), true},
		{"timeout", errors.New("context deadline exceeded"), true},
		{"other", errors.New("webhook returned 500"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapConnectionError(tt.err, "https://hooks.example.com")
			if tt.wrapped {
				if !errors.Is(got, ErrConnectionFailed) {
					t.Errorf("expected ErrConnectionFailed, got %v", got)
				}
				if !strings.Contains(got.Error(), "hooks.example.com") {
					t.Errorf("expected URL in message, got %q", got.Error())
				}
				return
			}
			if got != tt.err {
				t.Errorf("expected passthrough, got %v", got)
			}
		})
	}

	if WrapConnectionError(nil, "x") != nil {
		t.Error("expected nil for nil error")
	}
}

func TestNewErrors(t *testing.T) {
	t.Run("no project", func(t *testing.T) {
		err := NewNoProjectError()
		if !errors.Is(err, ErrNoProject) {
			t.Error("expected ErrNoProject")
		}
		if !strings.Contains(err.Error(), "--project") {
			t.Errorf("expected suggestion to mention --project, got %q", err.Error())
		}
	})

	t.Run("invalid output", func(t *testing.T) {
		err := NewInvalidOutputError("json")
		if !errors.Is(err, ErrInvalidOutput) {
			t.Error("expected ErrInvalidOutput")
		}
		if !strings.Contains(err.Error(), `"json"`) {
			t.Errorf("expected format in message, got %q", err.Error())
		}
	})
}

func TestCustomMessenger(t *testing.T) {
	err := NewNoProjectError(WithMessenger(&testMessenger{}))
	if !strings.Contains(err.Error(), "Custom no project") {
		t.Errorf("expected custom message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Custom suggestion") {
		t.Errorf("expected custom suggestion, got %q", err.Error())
	}

	err = WrapBuildingError(buildingError(3), WithMessenger(&testMessenger{}))
	if !strings.Contains(err.Error(), "3 broken") {
		t.Errorf("expected custom building message, got %q", err.Error())
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(error) bool
		err  error
		want bool
	}{
		{"building nil", IsBuildingError, nil, false},
		{"building raw", IsBuildingError, buildingError(1), true},
		{"building wrapped", IsBuildingError, WrapBuildingError(buildingError(1)), true},
		{"building other", IsBuildingError, errors.New("x"), false},
		{"connection sentinel", IsConnectionError, ErrConnectionFailed, true},
		{"connection string", IsConnectionError, errors.New("no such host"), true},
		{"connection other", IsConnectionError, errors.New("bad xml"), false},
		{"connection nil", IsConnectionError, nil, false},
		{"not found fs", IsNotFound, fs.ErrNotExist, true},
		{"not found sentinel", IsNotFound, ErrSettingsNotFound, true},
		{"not found other", IsNotFound, fs.ErrPermission, false},
		{"not found nil", IsNotFound, nil, false},
		{"permission fs", IsPermissionError, fmt.Errorf("open: %w", fs.ErrPermission), true},
		{"permission sentinel", IsPermissionError, ErrPermissionDenied, true},
		{"permission other", IsPermissionError, fs.ErrNotExist, false},
		{"permission nil", IsPermissionError, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("got %v, want %v for %v", got, tt.want, tt.err)
			}
		})
	}
}

type testMessenger struct{}

func (m *testMessenger) BuildingFailedMessage(problems int) (string, string) {
	return fmt.Sprintf("%d broken", problems), "Fix them"
}

func (m *testMessenger) NotFoundMessage(path string) (string, string) {
	return "Missing " + path, "Create it"
}

func (m *testMessenger) PermissionDeniedMessage(path string) (string, string) {
	return "Denied " + path, "chmod"
}

func (m *testMessenger) NoProjectMessage() (string, string) {
	return "Custom no project", "Custom suggestion"
}

func (m *testMessenger) ConnectionErrorMessage(url string) (string, string) {
	return "Connection failed to " + url, "Check endpoint"
}

func (m *testMessenger) InvalidOutputMessage(format string) (string, string) {
	return "Bad format " + format, "Use xml"
}
