// Package grammar holds the land-size expression grammar shared by phrase
// matching and acreage conversion. Anything the matcher can find is built from
// the same fragments the converter parses, so the two cannot drift apart.
package grammar

import (
	"regexp"
	"strconv"
	"strings"
)

// Category identifies which surface form a size phrase was recognised as.
type Category string

const (
	CategoryWritten      Category = "written-number"
	CategoryNumeric      Category = "numeric"
	CategoryHyphenated   Category = "hyphenated"
	CategoryHectare      Category = "hectare"
	CategoryDimensional  Category = "dimensional"
	CategoryFraction     Category = "fraction"
	CategoryPricePerAcre Category = "price-per-acre"
	CategoryQualitative  Category = "qualitative"
	CategoryFeetByFeet   Category = "feet-by-feet"
	CategoryPlotCount    Category = "plot-count"
)

const (
	acreUnit    = `(?:acres|acre|acrs|acr|ac)`
	hectareUnit = `(?:hectares|hectare|ha)`
	// number accepts comma-grouped thousands ("1,500"), plain digits and a
	// bare decimal (".5").
	number    = `(?:(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?|\.\d+)`
	decimal   = `\d+(?:\.\d+)?`
	separator = `(?:[x*×#/-]|by)`
	dimUnit   = `(?:fts|feet|ft|m)`

	units        = `(?:one|two|three|four|five|six|seven|eight|nine)`
	teens        = `(?:ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen)`
	tens         = `(?:twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)`
	belowHundred = `(?:` + tens + `[\s-]+` + units + `|` + teens + `|` + tens + `|` + units + `)`
	hundreds     = units + `\s+hundred(?:\s+(?:and\s+)?` + belowHundred + `)?`
	writtenWord  = `(?:` + hundreds + `|quarter|half|eighth|` + belowHundred + `)`
)

// Pattern bodies. Branches prefix them with \b for searching, rules with ^ for
// parsing an already isolated phrase.
const (
	writtenBody      = `(` + writtenWord + `)(?:th|rd|nd|s)?\s*(?:an\s+)?` + acreUnit + `\b`
	numericAcreBody  = `(` + number + `)\s*` + acreUnit + `\b`
	numericHaBody    = `(` + number + `)\s*` + hectareUnit + `\b`
	hyphenAcreBody   = `(` + number + `)\s*-+\s*` + acreUnit + `\b`
	hyphenHaBody     = `(` + number + `)\s*-+\s*` + hectareUnit + `\b`
	hectareRuleBody  = `(` + number + `)\s*-*\s*` + hectareUnit + `\b`
	dimensionBody    = `(` + decimal + `)\s*` + separator + `\s*(` + decimal + `)(?:\s*` + dimUnit + `\b)?`
	fractionThBody   = `(\d+)\s*/\s*(\d+)\s*th\s*` + acreUnit + `\b`
	fractionBody     = `(\d+)\s*/\s*(\d+)\s*-?\s*` + acreUnit + `\b`
	fractionRuleBody = `(\d+)\s*/\s*(\d+)\s*(?:th)?\s*-?\s*` + acreUnit + `\b`
	perAcreBody      = `(` + number + `)\s*/\s*` + acreUnit + `\b`
	qualitativeBody  = `slightly\s+more\s+than\s+a\s+quarter\s*` + acreUnit + `\b`
	feetByFeetBody   = `(\d+)\s*ft\s*\*\s*(\d+)\s*ft\b`
	plotCountBody    = `number\s+of\s+plots\s*:\s*\d+\b`
)

// Branch is one alternative of the size-phrase grammar.
type Branch struct {
	Category Category
	re       *regexp.Regexp
	// leadingPoint branches start with a number and may absorb a bare
	// decimal point that \b cannot anchor on, so ".5 acres" is not "5 acres".
	leadingPoint bool
}

func branch(c Category, body string) Branch {
	return Branch{Category: c, re: regexp.MustCompile(`(?i)\b` + body)}
}

func numberBranch(c Category, body string) Branch {
	b := branch(c, body)
	b.leadingPoint = true
	return b
}

// branches is ordered by priority; order only breaks ties between matches that
// start at the same offset and have the same length.
var branches = []Branch{
	branch(CategoryWritten, writtenBody),
	numberBranch(CategoryNumeric, numericAcreBody),
	numberBranch(CategoryHectare, numericHaBody),
	numberBranch(CategoryHyphenated, hyphenAcreBody),
	numberBranch(CategoryHectare, hyphenHaBody),
	branch(CategoryDimensional, dimensionBody),
	branch(CategoryFraction, fractionThBody),
	branch(CategoryFraction, fractionBody),
	branch(CategoryPricePerAcre, perAcreBody),
	branch(CategoryQualitative, qualitativeBody),
	branch(CategoryFeetByFeet, feetByFeetBody),
	branch(CategoryPlotCount, plotCountBody),
}

// Anchored rules used to convert an isolated phrase. Each matches from the
// start of its input only.
var (
	FractionRule    = rule(fractionRuleBody)
	WrittenRule     = rule(writtenBody)
	NumericAcreRule = rule(numericAcreBody)
	HyphenAcreRule  = rule(hyphenAcreBody)
	HectareRule     = rule(hectareRuleBody)
	DimensionRule   = rule(dimensionBody)
	FeetByFeetRule  = rule(feetByFeetBody)
	QualitativeRule = rule(qualitativeBody)
)

// canonicalFraction tolerates "th", spacing and a hyphen before the unit.
var canonicalFraction = regexp.MustCompile(`(?i)\b(\d+)\s*/\s*(\d+)(?:\s*th)?(?:\s*|-)?` + acreUnit + `\b`)

func rule(body string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + body)
}

// Expression is a size phrase located in free text.
type Expression struct {
	Text     string
	Category Category
	Start    int
	End      int
}

// Find returns the first size phrase in text. The earliest match across all
// branches wins; equal starts prefer the longer match, then branch order.
func Find(text string) (Expression, bool) {
	best := Expression{Start: -1}
	for _, b := range branches {
		loc := b.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if b.leadingPoint && bareDecimalPoint(text, loc[0]) {
			loc[0]--
		}
		if best.Start < 0 || loc[0] < best.Start || (loc[0] == best.Start && loc[1] > best.End) {
			best = Expression{Text: text[loc[0]:loc[1]], Category: b.Category, Start: loc[0], End: loc[1]}
		}
	}
	if best.Start < 0 {
		return Expression{}, false
	}
	return best, true
}

// bareDecimalPoint reports whether the digits at i follow a "." that is not
// itself glued to a word or number, as in " .5" but not "1.5" or "no.5".
func bareDecimalPoint(text string, i int) bool {
	if i < 1 || text[i-1] != '.' {
		return false
	}
	if i < 2 {
		return true
	}
	c := text[i-2]
	return !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_')
}

// CanonicalFraction rewrites the first "N/D[th][ -]acre" form in text to
// "N/D acre". It reports false when text has no such form.
func CanonicalFraction(text string) (string, bool) {
	m := canonicalFraction.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	den, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}
	return strconv.Itoa(num) + "/" + strconv.Itoa(den) + " acre", true
}

// ParseNumber parses a numeric token, ignoring thousands separators.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}
