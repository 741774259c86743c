// Package normalize turns the loosely formatted profile and job columns
// into typed values for API responses.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAge         = 25
	DefaultDateOfBirth = "N/A"
)

var (
	numberPattern = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})+(?:\.\d+)?|\d+(?:\.\d+)?`)
	dateLayouts   = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "02/01/2006"}
)

// SplitDelimited parses a comma-joined column. It also accepts the
// JSON-array-ish form some rows were saved in, e.g. `["Java", "SQL"]`.
// Empty tokens are dropped.
func SplitDelimited(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	out := []string{}
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.Trim(strings.TrimSpace(token), `"'[]`)
		token = strings.TrimSpace(token)
		if token == "" || strings.EqualFold(token, "null") {
			continue
		}
		out = append(out, token)
	}
	return out
}

// JoinDelimited is the write-side counterpart of SplitDelimited.
func JoinDelimited(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.Join(strings.Fields(strings.ReplaceAll(v, ",", " ")), " ")
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}

// ParseSalary returns the first numeric token in a free-text salary,
// e.g. "12.5 LPA" -> 12.5. Grouping commas are accepted in both the
// western and Indian styles ("1,200,000", "12,00,000"). Anything without a
// number yields 0.
func ParseSalary(raw string) float64 {
	match := numberPattern.FindString(raw)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// Age computes full years between dob and now. ok is false when dob is
// empty or not in a known layout.
func Age(dob string, now time.Time) (age int, ok bool) {
	born, ok := ParseDate(dob)
	if !ok {
		return 0, false
	}
	age = now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

// AgeOrDefault returns the age and the dob to display, falling back to
// DefaultAge and DefaultDateOfBirth when dob is unusable.
func AgeOrDefault(dob string, now time.Time) (int, string) {
	age, ok := Age(dob, now)
	if !ok {
		return DefaultAge, DefaultDateOfBirth
	}
	return age, strings.TrimSpace(dob)
}

func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Truncate returns at most n leading values.
func Truncate(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
