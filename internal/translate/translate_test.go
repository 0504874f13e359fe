// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"strings"
	"testing"
)

func TestWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kursi", "chair"},
		{"Meja", "table"},
		{"tinggi", "height"},
		{"jendela", "window"},
		{"banana", "banana"},
	}
	for _, tt := range tests {
		if got := Word(tt.in); got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandCompoundWinsOverSingle(t *testing.T) {
	terms := Expand("buatkan meja makan untuk 6 orang")
	if len(terms) == 0 {
		t.Fatal("expected terms for compound phrase")
	}
	if terms[0] != "dining table" {
		t.Errorf("first term = %q, want %q", terms[0], "dining table")
	}
	for _, term := range terms {
		if term == "desk" {
			t.Error("compound match should be exclusive, got generic desk expansion")
		}
	}
}

func TestExpandDeterministic(t *testing.T) {
	a := Expand("kursi dan meja")
	b := Expand("kursi dan meja")
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestQueryTranslatesAndExpands(t *testing.T) {
	q := Query("kursi dengan tinggi 45 cm")
	if !strings.Contains(q, "chair") {
		t.Errorf("query %q missing translated word", q)
	}
	if !strings.Contains(q, "height") {
		t.Errorf("query %q missing translated attribute", q)
	}
	if !strings.Contains(q, "backrest") {
		t.Errorf("query %q missing expansion terms", q)
	}
}
