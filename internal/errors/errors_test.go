package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrdocError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ErrdocError
		want string
	}{
		{
			name: "message only",
			err:  New("something broke"),
			want: "something broke",
		},
		{
			name: "with path",
			err:  PathError("src/errors.rs", "failed to read file", nil),
			want: "src/errors.rs: failed to read file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrdocError_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  *ErrdocError
		want int
	}{
		{"runtime", New("fail"), ExitFailure},
		{"config", Config("bad config"), ExitConfigError},
		{"validation", &ErrdocError{Kind: KindValidation, Message: "invalid"}, ExitConfigError},
		{"not found", NotFound("project", "."), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrdocError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, "context")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
}

func TestGetExitCode(t *testing.T) {
	if got := GetExitCode(nil); got != ExitSuccess {
		t.Errorf("GetExitCode(nil) = %d, want %d", got, ExitSuccess)
	}
	if got := GetExitCode(Config("bad")); got != ExitConfigError {
		t.Errorf("GetExitCode(config error) = %d, want %d", got, ExitConfigError)
	}
	if got := GetExitCode(fmt.Errorf("plain")); got != ExitFailure {
		t.Errorf("GetExitCode(plain error) = %d, want %d", got, ExitFailure)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("failed after %d attempts", 3)
	if err.Error() != "failed after 3 attempts" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestConfigf(t *testing.T) {
	err := Configf("unknown format %q", "xml")
	if err.Error() != `unknown format "xml"` {
		t.Errorf("Configf() = %q", err.Error())
	}
	if err.ExitCode() != ExitConfigError {
		t.Errorf("Configf().ExitCode() = %d, want %d", err.ExitCode(), ExitConfigError)
	}
}
