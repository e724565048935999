package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockResult struct {
	Revision int `json:"revision"`
}

func (m mockResult) Quiet() string  { return "rev 7" }
func (m mockResult) Pretty() string { return "pretty board" }

type mockPlain struct {
	Name string
}

// ============================================================================
// Success Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &out}

	if err := f.Success(mockResult{Revision: 7}); err != nil {
		t.Fatalf("Success() failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if !result["success"].(bool) {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["revision"] != float64(7) {
		t.Errorf("Expected data.revision 7, got %v", data["revision"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Quiet: true, JSON: true, Out: &out}

	if err := f.Success(mockResult{}); err != nil {
		t.Fatalf("Success() failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "rev 7" {
		t.Errorf("quiet output = %q, want rev 7", out.String())
	}
}

func TestOutputFormatter_Success_QuietFallsBackWithoutQuieter(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Quiet: true, Out: &out}

	if err := f.Success(mockPlain{Name: "x"}); err != nil {
		t.Fatalf("Success() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Name:x") {
		t.Errorf("fallback output = %q", out.String())
	}
}

func TestOutputFormatter_Success_Pretty(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Out: &out}

	if err := f.Success(mockResult{}); err != nil {
		t.Fatalf("Success() failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "pretty board" {
		t.Errorf("pretty output = %q", out.String())
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &out}

	if err := f.ErrorWithSuggestion("NOT_FOUND", "alias b not bound", "bind it with as:"); err != nil {
		t.Fatalf("ErrorWithSuggestion() failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result["success"].(bool) {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "NOT_FOUND" || errData["suggestion"] != "bind it with as:" {
		t.Errorf("unexpected error payload: %v", errData)
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Out: &out, Err: &errOut}

	if err := f.Error("DATA", "bad yaml"); err != nil {
		t.Fatalf("Error() failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: bad yaml") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestWithExitCode(t *testing.T) {
	if WithExitCode(ExitUsage, nil) != nil {
		t.Error("nil error should stay nil")
	}

	base := errors.New("boom")
	err := WithExitCode(ExitNotFound, base)

	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatal("expected *ExitCodeError")
	}
	if exitErr.Code != ExitNotFound {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitNotFound)
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to base")
	}
}
