package services

import (
	"strconv"
	"strings"

	"land-acreage/gazetteer"
	"land-acreage/models"
	"land-acreage/utils"
)

// fallbackColumns are joined when region_name alone does not name a county.
var fallbackColumns = []string{models.ColRegionName, models.ColRegionParentName, models.ColListingBy}

// LocationExtractor resolves each listing's county, its population density
// and how long the seller has been on the marketplace.
type LocationExtractor struct {
	logger *utils.Logger
	gaz    *gazetteer.Gazetteer
}

// NewLocationExtractor creates a LocationExtractor over gaz.
func NewLocationExtractor(logger *utils.Logger, gaz *gazetteer.Gazetteer) *LocationExtractor {
	return &LocationExtractor{logger: logger, gaz: gaz}
}

// Extract adds the county, density and years_on_jiji columns and drops
// time_on_jiji. Listings without a county keep empty cells; no row is
// dropped.
func (e *LocationExtractor) Extract(t *models.Table) (*models.Table, error) {
	if err := requireColumns(t, models.ColRegionName); err != nil {
		return nil, err
	}
	hasTenure := t.HasColumn(models.ColTimeOnJiji)
	if !hasTenure && !t.HasColumn(models.ColYearsOnJiji) {
		return nil, requireColumns(t, models.ColTimeOnJiji)
	}

	var resolved int
	for i, l := range t.Rows {
		if l == nil {
			return nil, errNilRow(i)
		}

		l.County = e.county(t, l)
		l.CountyDensity = nil
		if l.County != "" {
			resolved++
			if d, ok := e.gaz.LookupDensity(l.County); ok {
				l.CountyDensity = &d
			}
		}
		l.SetField(models.ColCounty, l.County)
		l.SetField(models.ColCountyDensity, models.FormatOptional(l.CountyDensity))

		if hasTenure {
			l.YearsOnJiji = ParseDuration(l.Field(models.ColTimeOnJiji))
			l.SetField(models.ColYearsOnJiji, models.FormatFloat(l.YearsOnJiji))
		} else if v, err := strconv.ParseFloat(l.Field(models.ColYearsOnJiji), 64); err == nil {
			l.YearsOnJiji = v
		}
	}

	t.AddColumn(models.ColCounty)
	t.AddColumn(models.ColCountyDensity)
	if hasTenure {
		t.AddColumn(models.ColYearsOnJiji)
		t.DropColumn(models.ColTimeOnJiji)
	}
	e.logger.Info("[locations] Resolved county for %d of %d listings", resolved, len(t.Rows))
	return t, nil
}

func (e *LocationExtractor) county(t *models.Table, l *models.Listing) string {
	if c, ok := e.gaz.LookupCounty(l.Field(models.ColRegionName)); ok {
		return c
	}

	parts := make([]string, 0, len(fallbackColumns))
	for _, col := range fallbackColumns {
		if !t.HasColumn(col) {
			continue
		}
		if v := strings.TrimSpace(l.Field(col)); v != "" {
			parts = append(parts, v)
		}
	}
	c, ok := e.gaz.LookupCounty(strings.Join(parts, " "))
	if !ok {
		e.logger.Debug("[locations] No county for %q", strings.Join(parts, " "))
	}
	return c
}
