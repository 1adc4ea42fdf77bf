package services

import (
	"regexp"
	"strconv"
)

var (
	yearsRegexp  = regexp.MustCompile(`(?i)(\d+)\s*y`)
	monthsRegexp = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// ParseDuration converts a tenure string such as "2y 3m" or "1 year 6 months"
// into fractional years. A missing component counts as zero.
func ParseDuration(s string) float64 {
	return float64(leadingInt(yearsRegexp, s)) + float64(leadingInt(monthsRegexp, s))/12
}

func leadingInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
