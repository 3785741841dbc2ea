package span

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a span from its compact notation:
//
//	".."     full
//	"3.."    from offset 3
//	"..5"    up to (excluding) offset 5
//	"..=5"   up to (including) offset 5
//
// Offsets must be non-negative decimal integers. The output of Span.String
// always parses back to an equal span.
func Parse(text string) (Span, error) {
	s := strings.TrimSpace(text)
	if s == ".." {
		return Full{}, nil
	}

	if rest, ok := strings.CutPrefix(s, "..="); ok {
		end, err := parseOffset(rest)
		if err != nil {
			return nil, fmt.Errorf("span: bad inclusive end in %q: %w", text, err)
		}
		return ToInclusive{End: end}, nil
	}
	if rest, ok := strings.CutPrefix(s, ".."); ok {
		end, err := parseOffset(rest)
		if err != nil {
			return nil, fmt.Errorf("span: bad end in %q: %w", text, err)
		}
		return To{End: end}, nil
	}
	if rest, ok := strings.CutSuffix(s, ".."); ok {
		start, err := parseOffset(rest)
		if err != nil {
			return nil, fmt.Errorf("span: bad start in %q: %w", text, err)
		}
		return From{Start: start}, nil
	}

	return nil, fmt.Errorf("span: %q is not a span notation", text)
}

func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("offset %d is negative", n)
	}
	return n, nil
}
