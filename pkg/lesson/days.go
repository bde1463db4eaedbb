package lesson

import (
	"strconv"
	"strings"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// Weekday names, Monday first, indexed the same way as EveryDay.
var (
	shortDays = map[int]string{1: "Du", 2: "Se", 3: "Ch", 4: "Pa", 5: "Ju", 6: "Sh", 0: "Ya"}
	longDays  = map[int]string{1: "Dushanba", 2: "Seshanba", 3: "Chorshanba", 4: "Payshanba", 5: "Juma", 6: "Shanba", 0: "Yakshanba"}
)

// DayName returns the short name of weekday d, 0 = Sunday.
func DayName(d int) string {
	return shortDays[d]
}

// FormatDays lists days Monday first. Every day, or nil, is empty since
// such lessons need no label.
func FormatDays(days []int) string {
	if days == nil {
		return ""
	}
	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	if len(set) >= 7 {
		return ""
	}
	var names []string
	for _, d := range EveryDay() {
		if set[d] {
			names = append(names, shortDays[d])
		}
	}
	return strings.Join(names, " ")
}

// ParseDays reads a comma separated list of weekdays. Entries are numbers
// 0..6 or short and long names, case insensitive. "all" is every day.
func ParseDays(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return EveryDay(), nil
	}
	var out []int
	seen := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, ok := lookupDay(part)
		if !ok {
			return nil, validation.Advisory("unknown weekday %q", part)
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, validation.Advisory("choose at least one weekday")
	}
	return out, nil
}

func lookupDay(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 0 && n <= 6
	}
	for d, name := range shortDays {
		if strings.EqualFold(s, name) || strings.EqualFold(s, longDays[d]) {
			return d, true
		}
	}
	return 0, false
}
