// SPDX-License-Identifier: MIT

package parse

import (
	"strings"
	"unicode/utf8"
)

// SplitW splits s around runs of whitespace. Leading and trailing
// whitespace never produce empty fields.
func SplitW(s string) []string {
	return strings.Fields(s)
}

// SplitCh splits s on every occurrence of c. Empty fields between two
// separators are kept; a single empty field at either end is dropped.
func SplitCh(s string, c rune) []string {
	return Split(s, func(r rune) bool { return r == c })
}

// Split generalises SplitCh to any separator predicate.
func Split(s string, sep func(rune) bool) []string {
	var out []string
	start := 0
	for i, r := range s {
		if sep(r) {
			out = append(out, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	out = append(out, s[start:])
	return trimEnds(out)
}

// SplitStr splits s on every occurrence of the substring t with the same
// end rules as SplitCh. An empty t yields s as the single field.
func SplitStr(s, t string) []string {
	if t == "" {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	return trimEnds(strings.Split(s, t))
}

func trimEnds(fields []string) []string {
	if len(fields) > 0 && fields[0] == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// SplitByEmptyLine groups consecutive non-empty lines. Blank lines (empty
// or whitespace only) separate groups; empty groups are never emitted.
func SplitByEmptyLine(lines []string) [][]string {
	var groups [][]string
	var cur []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// Lines splits text on "\n", strips a trailing "\r" from each line, and
// does not produce a final empty line for a trailing newline.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Grid converts lines to rows of runes, rejecting ragged input with ErrShape.
func Grid(lines []string) ([][]rune, error) {
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
		if len(rows[i]) != len(rows[0]) {
			return nil, shapeError(l, 0, "row %d has %d cells, row 0 has %d", i, len(rows[i]), len(rows[0]))
		}
	}
	return rows, nil
}
