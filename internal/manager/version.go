package manager

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions returns -1, 0 or 1. Semantic versions are compared with
// semver rules; anything else falls back to dotted numeric comparison.
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return cmpVersion(a, b)
}

// cmpVersion compares the leading numeric parts of a and b, padding the
// shorter one with zeros. Suffixes like "-beta" are ignored.
func cmpVersion(a, b string) int {
	xs := splitNumeric(normalizeVersion(a))
	ys := splitNumeric(normalizeVersion(b))
	for len(xs) < len(ys) {
		xs = append(xs, 0)
	}
	for len(ys) < len(xs) {
		ys = append(ys, 0)
	}
	for i := range xs {
		switch {
		case xs[i] > ys[i]:
			return 1
		case xs[i] < ys[i]:
			return -1
		}
	}
	return 0
}

// normalizeVersion keeps the first run of digits and dots, e.g. "v1.2.3-beta" -> "1.2.3".
func normalizeVersion(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, isDigit)
	if i < 0 {
		return ""
	}
	s = s[i:]
	if j := strings.IndexFunc(s, func(r rune) bool { return !isDigit(r) && r != '.' }); j >= 0 {
		s = s[:j]
	}
	return s
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// splitNumeric turns "1.2.3" into [1 2 3]; empty or malformed parts count as 0.
func splitNumeric(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i], _ = strconv.Atoi(p)
	}
	return out
}
