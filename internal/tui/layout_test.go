package tui

import "testing"

func TestCenterLinesPadsShorterLines(t *testing.T) {
	got := centerLines("7 x 8\n56")
	want := "7 x 8\n 56"
	if got != want {
		t.Fatalf("centerLines = %q, want %q", got, want)
	}
}

func TestCenterLinesSingleLineUnchanged(t *testing.T) {
	got := centerLines("That's correct!")
	if got != "That's correct!" {
		t.Fatalf("centerLines = %q", got)
	}
}
