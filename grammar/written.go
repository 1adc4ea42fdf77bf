package grammar

import (
	"strings"
)

// Lexical fractions that cannot be derived from the integer table.
var writtenFractions = map[string]float64{
	"quarter": 0.25,
	"half":    0.5,
	"eighth":  0.125,
}

var writtenUnits = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

var writtenTeens = map[string]float64{
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var writtenTens = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// ParseWritten converts a written number such as "quarter", "twenty five" or
// "two hundred and forty" into its value. The unit word must already be
// stripped. It reports false for anything outside quarter/half/eighth and
// 1..999.
func ParseWritten(words string) (float64, bool) {
	fields := strings.FieldsFunc(strings.ToLower(words), func(r rune) bool {
		return r == ' ' || r == '-' || r == '\t'
	})
	tokens := fields[:0]
	for _, f := range fields {
		if f != "and" && f != "an" {
			tokens = append(tokens, f)
		}
	}

	if len(tokens) == 1 {
		if v, ok := writtenFractions[tokens[0]]; ok {
			return v, true
		}
	}

	var total float64
	if len(tokens) >= 2 && tokens[1] == "hundred" {
		h, ok := writtenUnits[tokens[0]]
		if !ok {
			return 0, false
		}
		total = h * 100
		tokens = tokens[2:]
	}

	rest, ok := belowHundredValue(tokens)
	if !ok {
		return 0, false
	}
	total += rest
	if total <= 0 {
		return 0, false
	}
	return total, true
}

func belowHundredValue(tokens []string) (float64, bool) {
	switch len(tokens) {
	case 0:
		return 0, true
	case 1:
		if v, ok := writtenUnits[tokens[0]]; ok {
			return v, true
		}
		if v, ok := writtenTeens[tokens[0]]; ok {
			return v, true
		}
		if v, ok := writtenTens[tokens[0]]; ok {
			return v, true
		}
	case 2:
		t, okTens := writtenTens[tokens[0]]
		u, okUnits := writtenUnits[tokens[1]]
		if okTens && okUnits {
			return t + u, true
		}
	}
	return 0, false
}
