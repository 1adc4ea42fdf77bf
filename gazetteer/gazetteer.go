// Package gazetteer resolves Kenyan counties from free-text locations and
// looks up their 2019 census population density.
package gazetteer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// County is a county name and the location strings that identify it.
type County struct {
	Name      string
	Locations []string
}

type densityEntry struct {
	County  string
	Density float64
}

var (
	reCountyWord = regexp.MustCompile(`\bcounty\b`)
	reNonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// Gazetteer is an immutable lookup over counties and densities. Build it once
// with New and share it.
type Gazetteer struct {
	counties  []County
	lowered   [][]string
	densities []densityEntry
	keys      []string
	keyTokens []string
}

// New returns the gazetteer over the built-in Kenyan county tables.
func New() *Gazetteer {
	return newGazetteer(kenyanCounties, populationDensity2019)
}

func newGazetteer(counties []County, densities []densityEntry) *Gazetteer {
	g := &Gazetteer{counties: counties, densities: densities}
	g.lowered = make([][]string, len(counties))
	for i, c := range counties {
		locs := make([]string, len(c.Locations))
		for j, loc := range c.Locations {
			locs[j] = strings.ToLower(loc)
		}
		g.lowered[i] = locs
	}
	g.keys = make([]string, len(densities))
	g.keyTokens = make([]string, len(densities))
	for i, d := range densities {
		g.keys[i] = normalizeCounty(d.County)
		g.keyTokens[i] = reNonAlnum.ReplaceAllString(foldDiacritics(strings.ToLower(d.County)), " ")
	}
	return g
}

// Counties returns the county names in lookup order.
func (g *Gazetteer) Counties() []string {
	names := make([]string, len(g.counties))
	for i, c := range g.counties {
		names[i] = c.Name
	}
	return names
}

// LookupCounty returns the first county with a location name contained,
// case-insensitively, in text.
func (g *Gazetteer) LookupCounty(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for i, locs := range g.lowered {
		for _, loc := range locs {
			if strings.Contains(lower, loc) {
				return g.counties[i].Name, true
			}
		}
	}
	return "", false
}

// LookupDensity resolves a county name variant ("Nairobi", "nairobi county",
// "Murang'a") to persons per square kilometre.
func (g *Gazetteer) LookupDensity(name string) (float64, bool) {
	input := normalizeCounty(name)
	if input == "" {
		return 0, false
	}

	for i, key := range g.keys {
		if input == key || strings.Contains(key, input) || strings.Contains(input, key) {
			return g.densities[i].Density, true
		}
	}

	for _, token := range strings.Fields(input) {
		for i, key := range g.keyTokens {
			if strings.Contains(key, token) {
				return g.densities[i].Density, true
			}
		}
	}
	return 0, false
}

func normalizeCounty(s string) string {
	s = foldDiacritics(strings.ToLower(s))
	s = reCountyWord.ReplaceAllString(s, "")
	s = reNonAlnum.ReplaceAllString(s, " ")
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
