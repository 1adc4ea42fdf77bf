package models

import "strconv"

// Source columns read from the listings CSV.
const (
	ColTitle            = "title"
	ColDescription      = "description"
	ColPropertyDetails  = "property_details"
	ColPrice            = "price"
	ColPriceView        = "price_view"
	ColPricePeriod      = "price_period"
	ColRegionName       = "region_name"
	ColRegionParentName = "region_parent_name"
	ColListingBy        = "listing_by"
	ColTimeOnJiji       = "time_on_jiji"
)

// Columns added by the pipeline.
const (
	ColSize          = "size"
	ColAcreage       = "acreage"
	ColPriceKES      = "price_in_KES"
	ColPricePerAcre  = "price_per_acre(KES)"
	ColCounty        = "county"
	ColCountyDensity = "county_population_density(2019)"
	ColYearsOnJiji   = "years_on_jiji"
)

// Listing is one row of the listings table. Fields holds the source columns
// verbatim; the typed fields are filled in by the pipeline stages.
type Listing struct {
	Fields map[string]string

	Size         string
	SizeCategory string
	Acreage      float64
	PriceKES     *float64
	PricePerAcre *float64

	County        string
	CountyDensity *float64
	YearsOnJiji   float64
}

// NewListing creates a Listing from a column -> value map.
func NewListing(fields map[string]string) *Listing {
	if fields == nil {
		fields = make(map[string]string)
	}
	return &Listing{Fields: fields}
}

// Field returns the raw value of a column, or "" if absent.
func (l *Listing) Field(col string) string {
	return l.Fields[col]
}

// SetField stores the rendered value of a column.
func (l *Listing) SetField(col, value string) {
	l.Fields[col] = value
}

// FormatFloat renders a float the way output columns carry it: the shortest
// representation that parses back to the same value.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatOptional renders an absent value as an empty cell.
func FormatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatFloat(*v)
}

// Table is an ordered set of columns and the rows that carry them.
type Table struct {
	Columns []string
	Rows    []*Listing
}

// NewTable creates a Table with the given column order.
func NewTable(columns []string, rows []*Listing) *Table {
	return &Table{Columns: append([]string(nil), columns...), Rows: rows}
}

// Clone returns a copy of t whose rows and field maps can be changed without
// touching t. Nil rows stay nil.
func (t *Table) Clone() *Table {
	rows := make([]*Listing, len(t.Rows))
	for i, r := range t.Rows {
		if r == nil {
			continue
		}
		c := *r
		c.Fields = make(map[string]string, len(r.Fields))
		for k, v := range r.Fields {
			c.Fields[k] = v
		}
		rows[i] = &c
	}
	return NewTable(t.Columns, rows)
}

// HasColumn reports whether col is part of the table.
func (t *Table) HasColumn(col string) bool {
	return t.indexOf(col) >= 0
}

// AddColumn appends col unless it is already present.
func (t *Table) AddColumn(col string) {
	if !t.HasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
}

// DropColumn removes col from the column list and from every row.
func (t *Table) DropColumn(col string) {
	i := t.indexOf(col)
	if i < 0 {
		return
	}
	t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
	for _, r := range t.Rows {
		delete(r.Fields, col)
	}
}

// RenameColumn renames from to to in place, keeping its position.
func (t *Table) RenameColumn(from, to string) {
	i := t.indexOf(from)
	if i < 0 {
		return
	}
	t.Columns[i] = to
	for _, r := range t.Rows {
		if v, ok := r.Fields[from]; ok {
			r.Fields[to] = v
			delete(r.Fields, from)
		}
	}
}

func (t *Table) indexOf(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// InsightReport holds summary statistics over a processed table.
type InsightReport struct {
	TotalListings       int
	MinAcreage          float64
	MaxAcreage          float64
	AverageAcreage      float64
	AveragePricePerAcre float64
	PricedListings      int
	MostExpensive       *Listing
	Largest             []*Listing
	ListingsByCounty    map[string]int
	PhrasesByCategory   map[string]int
}
