package http

import (
	"errors"
	"strings"
	"testing"
)

func TestWeiValidation(t *testing.T) {
	type P struct {
		Amount string `json:"amount" validate:"wei"`
	}
	cv := NewValidator()

	for _, s := range []string{"0", "1", "100000000000000000", strings.Repeat("9", 78)} {
		if err := cv.Validate(P{Amount: s}); err != nil {
			t.Fatalf("expected wei OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{
		"",                      // empty
		"-1",                    // signed
		"0.1",                   // ether notation
		"0x10",                  // hex
		" 1",                    // whitespace
		strings.Repeat("9", 79), // wider than uint256
	} {
		err := cv.Validate(P{Amount: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "amount", "decimal wei amount") {
			t.Fatalf("expected wei message for %q, got: %+v", s, fe)
		}
	}
}

func TestAddressValidation(t *testing.T) {
	type P struct {
		Caller string `json:"caller" validate:"address"`
	}
	cv := NewValidator()

	for _, s := range []string{
		"0x00000000000000000000000000000000000a11ce",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	} {
		if err := cv.Validate(P{Caller: s}); err != nil {
			t.Fatalf("expected address OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "0x1234", "alice", "0x" + strings.Repeat("g", 40)} {
		err := cv.Validate(P{Caller: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "caller", "20-byte hex address") {
			t.Fatalf("expected address message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `json:"name" validate:"required"`
		Min  int    `json:"min" validate:"gte=10"`
		Max  int    `json:"max" validate:"lte=5"`
		Raw  int    `validate:"gte=1"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Min: 9, Max: 6, Raw: 0})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for min: %+v", fe)
	}
	if !containsFieldMsg(fe, "max", "less than or equal to 5") {
		t.Fatalf("missing lte message for max: %+v", fe)
	}
	// no json tag falls back to the Go field name
	if !containsFieldMsg(fe, "Raw", "greater than or equal to 1") {
		t.Fatalf("missing gte message for Raw: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
