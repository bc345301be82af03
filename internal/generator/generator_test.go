package generator

import "testing"

func TestFactorsWithinRange(t *testing.T) {
	g := New()
	for i := 0; i < 1000; i++ {
		first, second := g.Factors(0, 10)
		if first < 0 || first > 10 {
			t.Fatalf("first factor out of range: %d", first)
		}
		if second < 0 || second > 10 {
			t.Fatalf("second factor out of range: %d", second)
		}
	}
}

func TestFactorsSingleValueRange(t *testing.T) {
	g := New()
	for i := 0; i < 10; i++ {
		first, second := g.Factors(7, 7)
		if first != 7 || second != 7 {
			t.Fatalf("expected (7, 7), got (%d, %d)", first, second)
		}
	}
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		a1, a2 := a.Factors(0, 10)
		b1, b2 := b.Factors(0, 10)
		if a1 != b1 || a2 != b2 {
			t.Fatalf("seeded generators diverged at draw %d: (%d, %d) vs (%d, %d)", i, a1, a2, b1, b2)
		}
	}
}
