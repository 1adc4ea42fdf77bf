package grammar

import (
	"strings"
)

// FractionLiteral is a pre-computed decimal for a common fraction.
type FractionLiteral struct {
	Key   string
	Value float64
}

// FractionLiterals is consulted in order when a phrase carries a fraction
// that the strict fraction rule could not isolate, e.g. a bare "1/4".
var FractionLiterals = []FractionLiteral{
	{"1/2", 0.5},
	{"1/4", 0.25},
	{"1/8", 0.125},
	{"1/3", 0.3333},
	{"2/3", 0.6667},
	{"3/4", 0.75},
	{"5/8", 0.625},
	{"7/8", 0.875},
	{"1/5", 0.2},
	{"2/5", 0.4},
	{"3/5", 0.6},
	{"4/5", 0.8},
	{"1/6", 0.1667},
	{"5/6", 0.8333},
	{"1/10", 0.1},
	{"9/10", 0.9},
	{"3/8", 0.375},
}

// LookupFraction returns the literal value of the first table key found in
// text. A key only counts when it is not glued to further digits, so "11/20"
// does not hit "1/2".
func LookupFraction(text string) (float64, bool) {
	for _, lit := range FractionLiterals {
		if containsFraction(text, lit.Key) {
			return lit.Value, true
		}
	}
	return 0, false
}

func containsFraction(text, key string) bool {
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], key)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(key)
		if !isDigitAt(text, start-1) && !isDigitAt(text, end) {
			return true
		}
		from = start + 1
	}
	return false
}

func isDigitAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}
