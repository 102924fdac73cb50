package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithIDs struct {
	IDs []string
}

func (m mockDataWithIDs) GetIDs() []string {
	return m.IDs
}

type mockStringer struct{}

func (mockStringer) String() string { return "pretty" }

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(map[string]any{"test": "value"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["success"] != true {
		t.Errorf("success = %v, want true", result["success"])
	}
	data := result["data"].(map[string]any)
	if data["test"] != "value" {
		t.Errorf("data.test = %v, want value", data["test"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"single id", mockDataWithID{ID: "item-1", Name: "x"}, "item-1\n"},
		{"many ids", mockDataWithIDs{IDs: []string{"a", "b"}}, "a\nb\n"},
		{"no id", map[string]string{"k": "v"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("quiet output = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestOutputFormatter_QuietBeatsJSON ensures quiet wins when both are set.
func TestOutputFormatter_QuietBeatsJSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, true)
	if err := f.Success(mockDataWithID{ID: "item-9"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := out.String(); got != "item-9\n" {
		t.Errorf("output = %q, want bare id", got)
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	if err := f.Success(mockStringer{}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := out.String(); got != "pretty\n" {
		t.Errorf("output = %q, want Stringer output", got)
	}
}

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		if err := f.ErrorWithSuggestion("NOT_FOUND", "item x not found", "run lanes list"); err != nil {
			t.Fatalf("ErrorWithSuggestion() error = %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("human errors should go to stderr, stdout got %q", out.String())
		}
		if !strings.Contains(errOut.String(), "item x not found") || !strings.Contains(errOut.String(), "run lanes list") {
			t.Errorf("stderr = %q, want message and suggestion", errOut.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		if err := f.Error("NOT_FOUND", "item x not found"); err != nil {
			t.Fatalf("Error() error = %v", err)
		}
		var result struct {
			Success bool `json:"success"`
			Error   struct {
				Code       string `json:"code"`
				Message    string `json:"message"`
				Suggestion string `json:"suggestion"`
			} `json:"error"`
		}
		if err := json.Unmarshal(out.Bytes(), &result); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if result.Success || result.Error.Code != "NOT_FOUND" || result.Error.Suggestion != "" {
			t.Errorf("unexpected error payload: %+v", result)
		}
	})
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	cause := errors.New("boom")

	err := f.Fail(ExitValidation, "BAD", cause)

	if !errors.Is(err, cause) {
		t.Errorf("Fail() should wrap the cause, got %v", err)
	}
	if got := ExitCode(err); got != ExitValidation {
		t.Errorf("ExitCode() = %d, want %d", got, ExitValidation)
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q, want the message", errOut.String())
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d, want %d", got, ExitSuccess)
	}
	if got := ExitCode(errors.New("plain")); got != ExitError {
		t.Errorf("ExitCode(plain) = %d, want %d", got, ExitError)
	}
	wrapped := WithExitCode(ExitNotFound, errors.New("missing"))
	if got := ExitCode(errors.Join(errors.New("outer"), wrapped)); got != ExitNotFound {
		t.Errorf("ExitCode(joined) = %d, want %d", got, ExitNotFound)
	}
}
