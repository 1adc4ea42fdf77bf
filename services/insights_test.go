package services

import (
	"bytes"
	"strings"
	"testing"

	"land-acreage/models"
)

func insightListing(title string, acres float64, perAcre *float64, county, category string) *models.Listing {
	l := models.NewListing(map[string]string{models.ColTitle: title})
	l.Acreage = acres
	l.PricePerAcre = perAcre
	l.County = county
	l.SizeCategory = category
	return l
}

func sampleListings() []*models.Listing {
	return []*models.Listing{
		insightListing("Plot A", 0.25, ptr(4000000), "Kiambu", "fraction"),
		insightListing("Farm B", 10, ptr(150000), "Machakos", "numeric"),
		insightListing("Plot C", 0.5, ptr(2000000), "Kiambu", "written-number"),
		insightListing("Ranch D", 100, nil, "Laikipia", "numeric"),
		insightListing("Plot E", 0.1148, ptr(3000000), "", "dimensional"),
		insightListing("Shamba F", 2, ptr(500000), "Kiambu", "numeric"),
	}
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())
	if r.TotalListings != 6 {
		t.Errorf("TotalListings: got %d, want 6", r.TotalListings)
	}
	if r.PricedListings != 5 {
		t.Errorf("PricedListings: got %d, want 5", r.PricedListings)
	}
}

func TestInsightAcreage(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())
	if r.MinAcreage != 0.11 {
		t.Errorf("MinAcreage: got %.2f, want 0.11", r.MinAcreage)
	}
	if r.MaxAcreage != 100 {
		t.Errorf("MaxAcreage: got %.2f, want 100", r.MaxAcreage)
	}
	// (0.25 + 10 + 0.5 + 100 + 0.1148 + 2) / 6
	if r.AverageAcreage != 18.81 {
		t.Errorf("AverageAcreage: got %.2f, want 18.81", r.AverageAcreage)
	}
	if r.AveragePricePerAcre != 1930000 {
		t.Errorf("AveragePricePerAcre: got %.2f, want 1930000", r.AveragePricePerAcre)
	}
}

func TestInsightMostExpensive(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())
	if r.MostExpensive == nil {
		t.Fatal("MostExpensive should not be nil")
	}
	if got := r.MostExpensive.Field(models.ColTitle); got != "Plot A" {
		t.Errorf("MostExpensive: got %q, want %q", got, "Plot A")
	}
}

func TestInsightLargest(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())
	if len(r.Largest) != 5 {
		t.Fatalf("Largest len: got %d, want 5", len(r.Largest))
	}
	if r.Largest[0].Acreage != 100 {
		t.Errorf("Largest[0].Acreage: got %.2f, want 100", r.Largest[0].Acreage)
	}
	if r.Largest[4].Acreage != 0.25 {
		t.Errorf("Largest[4].Acreage: got %.2f, want 0.25", r.Largest[4].Acreage)
	}
}

func TestInsightGrouping(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleListings())
	if r.ListingsByCounty["Kiambu"] != 3 {
		t.Errorf("Kiambu count: got %d, want 3", r.ListingsByCounty["Kiambu"])
	}
	if _, ok := r.ListingsByCounty[""]; ok {
		t.Errorf("listings without a county should not be grouped")
	}
	if r.PhrasesByCategory["numeric"] != 3 {
		t.Errorf("numeric phrases: got %d, want 3", r.PhrasesByCategory["numeric"])
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(nil)
	if r.TotalListings != 0 {
		t.Errorf("expected 0 total listings for empty input")
	}
	if r.MostExpensive != nil {
		t.Errorf("expected no most expensive listing for empty input")
	}
}

func TestInsightPrint(t *testing.T) {
	var buf bytes.Buffer
	svc := NewInsightService(newTestLogger())
	svc.out = &buf
	svc.Print(svc.Generate(sampleListings()))

	out := buf.String()
	for _, want := range []string{"LAND LISTING INSIGHTS", "Plot A", "Kiambu", "Ranch D"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
