package id

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()
	if !IsID32(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ref := NewID32()
		if _, ok := seen[ref]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, ref)
		}
		seen[ref] = struct{}{}
	}
}

func TestIsID32(t *testing.T) {
	for _, s := range []string{
		"",
		strings.Repeat("A", 32),
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
		strings.Repeat("g", 32),
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
	} {
		if IsID32(s) {
			t.Fatalf("IsID32(%q) = true", s)
		}
	}
	if !IsID32(strings.Repeat("0", 32)) {
		t.Fatalf("zeros should be valid")
	}
}
