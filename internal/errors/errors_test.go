package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestTypedError(t *testing.T) {
	err := New(TypeInput, "bad value")
	if err.Error() != "[INPUT_ERROR] bad value" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if !IsType(err, TypeInput) {
		t.Error("IsType should match the error's own type")
	}
	if IsType(err, TypeNotFound) {
		t.Error("IsType should not match a different type")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(TypeInternal, "table load failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("Wrapped cause should satisfy errors.Is")
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Expected cause in message, got %q", err.Error())
	}
}

func TestIsTypeOnWrappedChain(t *testing.T) {
	inner := NotFound("material", "unobtainium")
	outer := Wrap(TypeParsing, "assembly resolution failed", inner)

	// The outer type wins, but the inner is still reachable.
	if !IsType(outer, TypeParsing) {
		t.Error("Expected outer PARSING type")
	}
	var typed *Error
	if !stderrors.As(stderrors.Unwrap(outer), &typed) || typed.Type != TypeNotFound {
		t.Error("Expected wrapped NOT_FOUND error")
	}
}

func TestNotFoundHelper(t *testing.T) {
	err := NotFound("screw grade", "13.7")
	if !IsType(err, TypeNotFound) {
		t.Fatalf("Expected NOT_FOUND, got %v", err)
	}
	if !strings.Contains(err.Error(), "screw grade") || !strings.Contains(err.Error(), "13.7") {
		t.Errorf("Expected resource and designation in %q", err.Error())
	}
}

func TestWithContext(t *testing.T) {
	err := Input("bad length").WithContext("attribute", "length").WithContext("line", 12)
	if err.Context["attribute"] != "length" {
		t.Errorf("Expected context entry, got %v", err.Context)
	}
	if err.Context["line"] != 12 {
		t.Errorf("Expected line context, got %v", err.Context)
	}
}

func TestIsTypeOnForeignError(t *testing.T) {
	if IsType(stderrors.New("plain"), TypeInput) {
		t.Error("Plain errors have no type")
	}
	if IsType(nil, TypeInput) {
		t.Error("nil has no type")
	}
}
