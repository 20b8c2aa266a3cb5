package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Seasons are written "2024-25": the calendar year the season tips off,
// then the two-digit year it ends.
var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ValidSeason reports whether s is a well-formed season label with
// consecutive years.
func ValidSeason(s string) bool {
	m := seasonPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return (start+1)%100 == end
}

// SeasonForYear builds the season label that starts in the given year.
func SeasonForYear(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// PrevSeason returns the season before s, or "" when s is malformed.
func PrevSeason(s string) string {
	m := seasonPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	start, _ := strconv.Atoi(m[1])
	return SeasonForYear(start - 1)
}

// SeasonHistory returns n season labels starting from the given one,
// most recent first.
func SeasonHistory(latest string, n int) []string {
	out := make([]string, 0, n)
	s := latest
	for i := 0; i < n && s != ""; i++ {
		out = append(out, s)
		s = PrevSeason(s)
	}
	return out
}

// NormalizeSeason trims whitespace and expands a bare start year
// ("2024" -> "2024-25"). Returns "" when the input cannot be understood.
func NormalizeSeason(s string) string {
	s = strings.TrimSpace(s)
	if ValidSeason(s) {
		return s
	}
	if year, err := strconv.Atoi(s); err == nil && year >= 1946 && year <= 9999 {
		return SeasonForYear(year)
	}
	return ""
}
