package span

import (
	"math"
	"testing"
)

func TestSpan_Bounds(t *testing.T) {
	cases := []struct {
		span  Span
		start Bound
		end   Bound
	}{
		{span: Full{}, start: Unbounded(), end: Unbounded()},
		{span: From{Start: 3}, start: Included(3), end: Unbounded()},
		{span: To{End: 5}, start: Unbounded(), end: Excluded(5)},
		{span: ToInclusive{End: 5}, start: Unbounded(), end: Included(5)},
	}

	for _, tc := range cases {
		if got := tc.span.StartBound(); got != tc.start {
			t.Fatalf("%s start bound: got %v, want %v", tc.span, got, tc.start)
		}
		if got := tc.span.EndBound(); got != tc.end {
			t.Fatalf("%s end bound: got %v, want %v", tc.span, got, tc.end)
		}
	}
}

func TestSpan_String(t *testing.T) {
	cases := []struct {
		span Span
		want string
	}{
		{span: Full{}, want: ".."},
		{span: From{Start: 3}, want: "3.."},
		{span: To{End: 5}, want: "..5"},
		{span: ToInclusive{End: 5}, want: "..=5"},
	}

	for _, tc := range cases {
		if got := tc.span.String(); got != tc.want {
			t.Fatalf("String: got %q, want %q", got, tc.want)
		}
	}
}

func TestToInclusive_ToExclusive(t *testing.T) {
	cases := []struct {
		end  int
		want int
	}{
		{end: 0, want: 1},
		{end: 5, want: 6},
		{end: math.MaxInt - 1, want: math.MaxInt},
	}

	for _, tc := range cases {
		if got := (ToInclusive{End: tc.end}).ToExclusive(); got.End != tc.want {
			t.Fatalf("ToExclusive(..=%d): got ..%d, want ..%d", tc.end, got.End, tc.want)
		}
	}
}

func TestToInclusive_ToExclusive_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on ..=MaxInt conversion")
		}
	}()
	_ = (ToInclusive{End: math.MaxInt}).ToExclusive()
}

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		want Span
	}{
		{text: "..", want: Full{}},
		{text: "0..", want: From{Start: 0}},
		{text: "3..", want: From{Start: 3}},
		{text: "..0", want: To{End: 0}},
		{text: "..12", want: To{End: 12}},
		{text: "..=0", want: ToInclusive{End: 0}},
		{text: "..=7", want: ToInclusive{End: 7}},
		{text: "  ..5 ", want: To{End: 5}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.text)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q): got %#v, want %#v", tc.text, got, tc.want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []string{
		"",
		"5",
		"1..5",
		"..-1",
		"-1..",
		"..=",
		"....",
		"a..",
		"..b",
	}

	for _, text := range cases {
		if got, err := Parse(text); err == nil {
			t.Fatalf("Parse(%q): expected error, got %#v", text, got)
		}
	}
}

func TestParse_RoundTripsString(t *testing.T) {
	spans := []Span{Full{}, From{Start: 9}, To{End: 4}, ToInclusive{End: 0}}

	for _, s := range spans {
		got, err := Parse(s.String())
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("round trip %q: got %#v, want %#v", s.String(), got, s)
		}
	}
}
