// Package timeutil parses the day windows used to filter dated history.
package timeutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseWindow reads a window like "3d", "2w" or "1w3d" and returns its
// length in days with a compact label. An empty window is 0 days, meaning
// no limit.
func ParseWindow(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", nil
	}
	total := 0
	for len(remaining) > 0 {
		m := segment.FindStringSubmatch(remaining)
		if m == nil {
			return 0, "", validation.Advisory("window %q: use days or weeks, like 3d or 2w", input)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, "", validation.Advisory("window %q: %v", input, err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, "", validation.Advisory("window %q: unknown unit %q", input, m[2])
		}
		total += n * unit
		remaining = remaining[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", validation.Advisory("window %q must be at least one day", input)
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a day count as weeks and days.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		b.WriteString(strconv.Itoa(w) + "w")
	}
	if d := days % 7; d > 0 {
		b.WriteString(strconv.Itoa(d) + "d")
	}
	return b.String()
}

// Cutoff is the start of the earliest local day inside a window of days
// ending today. A window of 1 is today only.
func Cutoff(now time.Time, days int) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.AddDate(0, 0, -(days - 1))
}

// Within reports whether t falls on or after the cutoff of the window.
// Zero days means no limit.
func Within(t, now time.Time, days int) bool {
	return days <= 0 || !t.Before(Cutoff(now, days))
}
