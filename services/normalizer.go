package services

import (
	"math"
	"regexp"
	"strings"

	"land-acreage/grammar"
	"land-acreage/models"
	"land-acreage/utils"
)

const (
	acresPerHectare = 2.471
	sqFtPerAcre     = 43560.0
	qualitativeSize = 0.25
)

// conversion turns the submatches of its rule into acres.
type conversion struct {
	name    string
	rule    *regexp.Regexp
	convert func(m []string) (float64, bool)
}

// conversions run in precedence order; the first rule whose pattern matches
// decides the result. The literal fraction table sits between the written
// numbers and the numeric rules, see toAcres.
var (
	leadingConversions = []conversion{
		{"fraction", grammar.FractionRule, func(m []string) (float64, bool) {
			return ratio(m[1], m[2])
		}},
		{"written", grammar.WrittenRule, func(m []string) (float64, bool) {
			return grammar.ParseWritten(m[1])
		}},
	}
	trailingConversions = []conversion{
		{"numeric", grammar.NumericAcreRule, scaled(1)},
		{"hyphenated", grammar.HyphenAcreRule, scaled(1)},
		{"hectare", grammar.HectareRule, scaled(acresPerHectare)},
		// Metre dimensions are treated as feet. Downstream data already
		// depends on this, so it is kept as is.
		{"dimensional", grammar.DimensionRule, area},
		{"feet-by-feet", grammar.FeetByFeetRule, area},
		{"qualitative", grammar.QualitativeRule, func([]string) (float64, bool) {
			return qualitativeSize, true
		}},
	}
)

// Normalizer converts size phrases to acres.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// ToAcres converts a size phrase to acres. Plot counts, per-acre prices and
// anything else that is not a land measure yield NotFound, as does any
// value that is not a finite positive number.
func (n *Normalizer) ToAcres(phrase string) Outcome[float64] {
	v, _, ok := toAcres(phrase)
	if !ok {
		return NotFound[float64]()
	}
	return Matched(v)
}

func toAcres(phrase string) (float64, string, bool) {
	expr, ok := grammar.Find(strings.ToLower(strings.TrimSpace(phrase)))
	if !ok {
		return 0, "", false
	}
	text := expr.Text

	if v, name, ok := applyConversions(leadingConversions, text); ok {
		return checked(v, name)
	}
	if v, ok := grammar.LookupFraction(text); ok {
		return checked(v, "fraction-literal")
	}
	if v, name, ok := applyConversions(trailingConversions, text); ok {
		return checked(v, name)
	}
	return 0, "", false
}

// applyConversions reports ok as soon as a rule matches, even if its value
// turns out unusable; later rules are not consulted.
func applyConversions(cs []conversion, text string) (float64, string, bool) {
	for _, c := range cs {
		m := c.rule.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, ok := c.convert(m)
		if !ok {
			return math.NaN(), c.name, true
		}
		return v, c.name, true
	}
	return 0, "", false
}

func checked(v float64, name string) (float64, string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, name, false
	}
	return v, name, true
}

// CanonicalizeFractions rewrites fraction phrases in the size column to the
// "N/D acre" form. It never drops rows.
func (n *Normalizer) CanonicalizeFractions(t *models.Table) (*models.Table, error) {
	if err := requireColumns(t, models.ColSize); err != nil {
		return nil, err
	}

	var rewritten int
	for i, l := range t.Rows {
		if l == nil {
			return nil, errNilRow(i)
		}
		v, ok := grammar.CanonicalFraction(l.Field(models.ColSize))
		if !ok {
			continue
		}
		if v != l.Field(models.ColSize) {
			rewritten++
		}
		l.Size = v
		l.SetField(models.ColSize, v)
	}
	n.logger.Info("[normalizer] Canonicalised %d fraction phrases", rewritten)
	return t, nil
}

// ConvertToAcreage adds the acreage column and drops every listing whose
// size phrase does not convert to a positive acreage.
func (n *Normalizer) ConvertToAcreage(t *models.Table) (*models.Table, error) {
	if err := requireColumns(t, models.ColSize); err != nil {
		return nil, err
	}

	in := len(t.Rows)
	extract := func(l *models.Listing) Outcome[float64] {
		out := n.ToAcres(l.Field(models.ColSize))
		if !out.Found {
			n.logger.Debug("[normalizer] No acreage for %q", l.Field(models.ColSize))
		}
		return out
	}
	rows, err := filterRows(t.Rows, extract, func(l *models.Listing, acres float64) {
		l.Acreage = acres
		l.SetField(models.ColAcreage, models.FormatFloat(acres))
	})
	if err != nil {
		return nil, err
	}

	t.Rows = rows
	t.AddColumn(models.ColAcreage)
	n.logger.Info("[normalizer] Converted to acreage: %d → %d listings (dropped %d)", in, len(rows), in-len(rows))
	return t, nil
}

// Inspection describes how a piece of text is read by the grammar.
type Inspection struct {
	Phrase    string
	Category  grammar.Category
	Canonical string
	Rule      string
	Acreage   float64
	Found     bool
}

// Inspect runs the matcher and converter over text without a table.
func Inspect(text string) Inspection {
	var in Inspection
	expr, ok := grammar.Find(normalizeField(text))
	if !ok {
		return in
	}
	in.Phrase = expr.Text
	in.Category = expr.Category

	phrase := expr.Text
	if c, ok := grammar.CanonicalFraction(phrase); ok {
		in.Canonical = c
		phrase = c
	}
	v, rule, found := toAcres(phrase)
	in.Rule = rule
	in.Acreage = v
	in.Found = found
	return in
}

func ratio(num, den string) (float64, bool) {
	a, err := grammar.ParseNumber(num)
	if err != nil {
		return 0, false
	}
	b, err := grammar.ParseNumber(den)
	if err != nil || b == 0 {
		return 0, false
	}
	return a / b, true
}

func scaled(factor float64) func(m []string) (float64, bool) {
	return func(m []string) (float64, bool) {
		v, err := grammar.ParseNumber(m[1])
		if err != nil {
			return 0, false
		}
		return v * factor, true
	}
}

func area(m []string) (float64, bool) {
	l, err := grammar.ParseNumber(m[1])
	if err != nil {
		return 0, false
	}
	w, err := grammar.ParseNumber(m[2])
	if err != nil {
		return 0, false
	}
	return l * w / sqFtPerAcre, true
}
