package services

import (
	"strings"

	"land-acreage/grammar"
	"land-acreage/models"
	"land-acreage/utils"
)

// fieldReplacer undoes the encoding artifacts seen in scraped listing text
// and flattens line breaks.
var fieldReplacer = strings.NewReplacer(
	"Â", "A",
	"×", "x",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// textColumns are searched, in order, for a size phrase.
var textColumns = []string{models.ColTitle, models.ColDescription, models.ColPropertyDetails}

// Matcher finds the land-size phrase in each listing's free text.
type Matcher struct {
	logger *utils.Logger
}

// NewMatcher creates a Matcher with the given logger.
func NewMatcher(logger *utils.Logger) *Matcher {
	return &Matcher{logger: logger}
}

// FindSize returns the first size expression in the listing's title,
// description and property details.
func (m *Matcher) FindSize(l *models.Listing) Outcome[grammar.Expression] {
	expr, ok := grammar.Find(listingText(l))
	if !ok {
		return NotFound[grammar.Expression]()
	}
	return Matched(expr)
}

// ExtractSizes adds the size column and drops every listing without a
// recognisable size phrase.
func (m *Matcher) ExtractSizes(t *models.Table) (*models.Table, error) {
	if err := requireColumns(t, textColumns...); err != nil {
		return nil, err
	}

	in := len(t.Rows)
	rows, err := filterRows(t.Rows, m.FindSize, func(l *models.Listing, expr grammar.Expression) {
		l.Size = expr.Text
		l.SizeCategory = string(expr.Category)
		l.SetField(models.ColSize, expr.Text)
		m.logger.Debug("[matcher] %q (%s)", expr.Text, expr.Category)
	})
	if err != nil {
		return nil, err
	}

	t.Rows = rows
	t.AddColumn(models.ColSize)
	m.logger.Info("[matcher] Extracted sizes: %d → %d listings (dropped %d)", in, len(rows), in-len(rows))
	return t, nil
}

func listingText(l *models.Listing) string {
	parts := make([]string, 0, len(textColumns))
	for _, col := range textColumns {
		if v := normalizeField(l.Field(col)); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "  ")
}

func normalizeField(s string) string {
	return strings.TrimSpace(fieldReplacer.Replace(s))
}
