package grapheme

import "testing"

func TestIsBoundary_ASCII(t *testing.T) {
	for off := 0; off <= 3; off++ {
		if !IsBoundary("abc", off) {
			t.Fatalf("expected offset %d of %q to be a boundary", off, "abc")
		}
	}
	if IsBoundary("abc", -1) || IsBoundary("abc", 4) {
		t.Fatalf("offsets outside the text must not be boundaries")
	}
}

func TestIsBoundary_CombiningMark(t *testing.T) {
	// "e" followed by U+0301: one cluster of three bytes. Offset 1 starts a
	// new code point but stays inside the cluster.
	s := "é"
	if !IsBoundary(s, 0) || !IsBoundary(s, len(s)) {
		t.Fatalf("text edges must be boundaries")
	}
	for off := 1; off < len(s); off++ {
		if IsBoundary(s, off) {
			t.Fatalf("offset %d of %q must be inside the cluster", off, s)
		}
	}
}

func TestIsBoundary_ZWJFamily(t *testing.T) {
	s := "👨‍👩‍👧‍👦"
	if Count(s) != 1 {
		t.Fatalf("family emoji: got %d clusters, want 1", Count(s))
	}
	for off := 1; off < len(s); off++ {
		if IsBoundary(s, off) {
			t.Fatalf("offset %d of the family emoji must be inside the cluster", off)
		}
	}
}

func TestIsBoundary_MultiByteLetters(t *testing.T) {
	s := "Привет"
	want := map[int]bool{0: true, 2: true, 4: true, 6: true, 8: true, 10: true, 12: true}
	for off := 0; off <= len(s); off++ {
		if got := IsBoundary(s, off); got != want[off] {
			t.Fatalf("IsBoundary(%q, %d): got %v, want %v", s, off, got, want[off])
		}
	}
}

func TestCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "Привет", want: 6},
		{text: "é", want: 1},
	}

	for _, tc := range cases {
		if got := Count(tc.text); got != tc.want {
			t.Fatalf("Count(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}
