package sport

import (
	"math"
	"strconv"
	"strings"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// ParseSet reads a set written as "REPSxWEIGHT" (e.g. "10x42.5") or just
// "REPS".
func ParseSet(s string) (Set, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	repsPart, weightPart, hasWeight := strings.Cut(s, "x")
	reps, err := strconv.Atoi(strings.TrimSpace(repsPart))
	if err != nil || reps < 0 {
		return Set{}, validation.Advisory("set %q: reps must be a whole number", s)
	}
	set := Set{Reps: reps}
	if hasWeight {
		w, err := strconv.ParseFloat(strings.TrimSpace(weightPart), 64)
		if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return Set{}, validation.Advisory("set %q: weight must be a number", s)
		}
		set.Weight = w
	}
	return set, nil
}

// ParseSets parses every argument with ParseSet.
func ParseSets(args []string) ([]Set, error) {
	sets := make([]Set, 0, len(args))
	for _, a := range args {
		s, err := ParseSet(a)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}
