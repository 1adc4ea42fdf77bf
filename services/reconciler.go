package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"land-acreage/models"
	"land-acreage/utils"
)

// perAcrePeriod marks a price that is already quoted per acre.
const perAcrePeriod = "per Acre"

// currencyRegexp matches a Kenyan shilling marker around a price.
var currencyRegexp = regexp.MustCompile(`(?i)^\s*(?:kshs?|kes)\.?\s*|\s*(?:kshs?|kes)\.?\s*$`)

// Reconciler derives the price per acre from a listing's price and period.
type Reconciler struct {
	logger *utils.Logger
}

// NewReconciler creates a Reconciler with the given logger.
func NewReconciler(logger *utils.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// Reconcile drops price_view, renames price to price_in_KES and adds the
// price per acre column. It never drops rows. A table that already carries
// price_in_KES is accepted as is.
func (r *Reconciler) Reconcile(t *models.Table) (*models.Table, error) {
	if err := requireColumns(t); err != nil {
		return nil, err
	}
	priceCol := models.ColPrice
	if !t.HasColumn(models.ColPrice) && t.HasColumn(models.ColPriceKES) {
		priceCol = models.ColPriceKES
	}
	if err := requireColumns(t, priceCol, models.ColPricePeriod); err != nil {
		return nil, err
	}

	t.DropColumn(models.ColPriceView)
	t.RenameColumn(models.ColPrice, models.ColPriceKES)

	var derived int
	for i, l := range t.Rows {
		if l == nil {
			return nil, errNilRow(i)
		}
		l.PriceKES = r.ParsePrice(l.Field(models.ColPriceKES))
		l.PricePerAcre = DerivePricePerAcre(l.Acreage, l.PriceKES, l.Field(models.ColPricePeriod))
		if l.PricePerAcre != nil {
			derived++
		}
		l.SetField(models.ColPriceKES, models.FormatOptional(l.PriceKES))
		l.SetField(models.ColPricePerAcre, models.FormatOptional(l.PricePerAcre))
	}

	t.AddColumn(models.ColPricePerAcre)
	r.logger.Info("[reconciler] Derived price per acre for %d of %d listings", derived, len(t.Rows))
	return t, nil
}

// ParsePrice reads a price cell as one number after removing a shilling
// marker and thousands separators. Anything else left in the cell makes the
// price absent rather than guessed.
// Examples:
//
//	"1500000"        → 1500000
//	"KSh 1,500,000"  → 1500000
//	"1.5e6"          → 1500000
//	"2.5M"           → nil
//	""               → nil
func (r *Reconciler) ParsePrice(raw string) *float64 {
	cleaned := currencyRegexp.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, ",", ""))
	if cleaned == "" {
		return nil
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		r.logger.Debug("[reconciler] Unparseable price %q", raw)
		return nil
	}
	return &v
}

// DerivePricePerAcre returns price itself when the period is exactly
// "per Acre" and price divided by acreage otherwise, including when the
// period is missing. It returns nil for a missing price or an acreage that
// is not positive.
func DerivePricePerAcre(acreage float64, price *float64, period string) *float64 {
	if price == nil || !(acreage > 0) {
		return nil
	}
	if strings.TrimSpace(period) == perAcrePeriod {
		v := *price
		return &v
	}
	v := *price / acreage
	return &v
}
