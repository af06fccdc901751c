package random

import (
	"strings"
	"testing"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name   string
		length int
	}{
		{name: "document id", length: 24},
		{name: "uid", length: 12},
		{name: "single", length: 1},
		{name: "zero", length: 0},
		{name: "negative", length: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Generate(tt.length)

			want := tt.length
			if want < 0 {
				want = 0
			}
			if len(got) != want {
				t.Fatalf("Generate(%d) length = %d, want %d", tt.length, len(got), want)
			}
			for _, c := range got {
				if !strings.ContainsRune(alphabet, c) {
					t.Errorf("Generate(%d) = %q contains %q", tt.length, got, c)
				}
			}
		})
	}
}

func TestNewSeededGenerator_Reproducible(t *testing.T) {
	a := NewSeededGenerator(42)
	b := NewSeededGenerator(42)

	for i := 0; i < 5; i++ {
		x, y := a.Generate(24), b.Generate(24)
		if x != y {
			t.Fatalf("seeded generators diverged at %d: %q != %q", i, x, y)
		}
	}
}

func TestGenerator_UsesWholeAlphabet(t *testing.T) {
	g := NewSeededGenerator(7)
	seen := make(map[rune]bool)
	for _, c := range g.Generate(10000) {
		seen[c] = true
	}

	if len(seen) != len(alphabet) {
		t.Errorf("saw %d distinct characters, want %d", len(seen), len(alphabet))
	}
}
