package services

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"land-acreage/models"
	"land-acreage/utils"
)

type InsightService struct {
	logger *utils.Logger
	out    io.Writer
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger, out: os.Stdout}
}

func (s *InsightService) Generate(listings []*models.Listing) *models.InsightReport {
	report := &models.InsightReport{
		ListingsByCounty:  make(map[string]int),
		PhrasesByCategory: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)
	report.MinAcreage = listings[0].Acreage
	report.MaxAcreage = listings[0].Acreage

	var totalAcres, totalPerAcre float64
	var maxPerAcre float64
	for _, l := range listings {
		totalAcres += l.Acreage
		if l.Acreage < report.MinAcreage {
			report.MinAcreage = l.Acreage
		}
		if l.Acreage > report.MaxAcreage {
			report.MaxAcreage = l.Acreage
		}
		if l.PricePerAcre != nil {
			report.PricedListings++
			totalPerAcre += *l.PricePerAcre
			if report.MostExpensive == nil || *l.PricePerAcre > maxPerAcre {
				maxPerAcre = *l.PricePerAcre
				report.MostExpensive = l
			}
		}
		if l.County != "" {
			report.ListingsByCounty[l.County]++
		}
		if l.SizeCategory != "" {
			report.PhrasesByCategory[l.SizeCategory]++
		}
	}

	report.AverageAcreage = round2(totalAcres / float64(len(listings)))
	report.MinAcreage = round2(report.MinAcreage)
	report.MaxAcreage = round2(report.MaxAcreage)
	if report.PricedListings > 0 {
		report.AveragePricePerAcre = round2(totalPerAcre / float64(report.PricedListings))
	}

	// Top 5 by acreage
	largest := append([]*models.Listing(nil), listings...)
	sort.SliceStable(largest, func(i, j int) bool {
		return largest[i].Acreage > largest[j].Acreage
	})
	if len(largest) > 5 {
		largest = largest[:5]
	}
	report.Largest = largest

	s.logger.Debug("[insights] Report over %d listings (%d priced)", report.TotalListings, report.PricedListings)
	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	w := s.out
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 LAND LISTING INSIGHTS\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Listings with acreage  : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Fprintf(w, "  Listings with a price  : \033[1m%d\033[0m\n", r.PricedListings)
	fmt.Fprintln(w)

	// Acreage Stats
	fmt.Fprintf(w, "\033[1;33m  Acreage Statistics\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.TotalListings > 0 {
		fmt.Fprintf(w, "  Average size : \033[1;32m%.2f acres\033[0m\n", r.AverageAcreage)
		fmt.Fprintf(w, "  Smallest     : \033[1;32m%.2f acres\033[0m\n", r.MinAcreage)
		fmt.Fprintf(w, "  Largest      : \033[1;32m%.2f acres\033[0m\n", r.MaxAcreage)
	} else {
		fmt.Fprintf(w, "  No acreage data available\n")
	}
	if r.PricedListings > 0 {
		fmt.Fprintf(w, "  Avg price/acre : \033[1;32mKES %.2f\033[0m\n", r.AveragePricePerAcre)
	}
	fmt.Fprintln(w)

	// Most Expensive
	if r.MostExpensive != nil {
		fmt.Fprintf(w, "\033[1;33m  Most Expensive per Acre\033[0m\n")
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s\n", truncate(r.MostExpensive.Field(models.ColTitle), 50))
		fmt.Fprintf(w, "  Size  : %s (%.2f acres)\n", r.MostExpensive.Size, r.MostExpensive.Acreage)
		fmt.Fprintf(w, "  Price : \033[1;31mKES %.2f/acre\033[0m\n", *r.MostExpensive.PricePerAcre)
		fmt.Fprintln(w)
	}

	// ── TOP 5 LARGEST ────────────────────────────────────────────────────
	fmt.Fprintf(w, "\033[1;33m  Top 5 Largest Plots\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.Largest) == 0 {
		fmt.Fprintf(w, "  No listings found\n")
	} else {
		for i, l := range r.Largest {
			title := truncate(l.Field(models.ColTitle), 38)
			fmt.Fprintf(w, "  \033[1m%d.\033[0m %-40s \033[1;32m%.2f ac\033[0m\n",
				i+1, title, l.Acreage)
		}
	}
	fmt.Fprintln(w)

	printCounts(w, "Listings by County", "No county data", r.ListingsByCounty, thin)
	printCounts(w, "Size Phrases by Form", "No phrase data", r.PhrasesByCategory, thin)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

const maxBarWidth = 40

func printCounts(w io.Writer, title, empty string, counts map[string]int, thin string) {
	fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", title)
	fmt.Fprintf(w, "  %s\n", thin)
	if len(counts) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}

	type keyCount struct {
		key   string
		count int
	}
	var kcs []keyCount
	for k, c := range counts {
		kcs = append(kcs, keyCount{k, c})
	}
	// Sort by count descending, then name, so output is stable
	sort.Slice(kcs, func(i, j int) bool {
		if kcs[i].count != kcs[j].count {
			return kcs[i].count > kcs[j].count
		}
		return kcs[i].key < kcs[j].key
	})
	for _, kc := range kcs {
		bar := strings.Repeat("█", min(kc.count, maxBarWidth))
		fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(kc.key, 28), bar, kc.count)
	}
	fmt.Fprintln(w)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
