package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"land-acreage/models"
	"land-acreage/storage"
)

var sourceColumns = []string{
	models.ColTitle, models.ColDescription, models.ColPropertyDetails,
	models.ColPrice, models.ColPriceView, models.ColPricePeriod,
}

func sourceTable(rows ...map[string]string) *models.Table {
	ls := make([]*models.Listing, len(rows))
	for i, r := range rows {
		fields := make(map[string]string, len(sourceColumns))
		for _, c := range sourceColumns {
			fields[c] = r[c]
		}
		ls[i] = models.NewListing(fields)
	}
	return models.NewTable(sourceColumns, ls)
}

func newTestProcessor(opts Options) *Processor {
	return NewProcessor(newTestLogger(), nil, opts)
}

func acreages(t *models.Table) []float64 {
	out := make([]float64, len(t.Rows))
	for i, l := range t.Rows {
		out[i] = l.Acreage
	}
	return out
}

func TestProcessEndToEnd(t *testing.T) {
	p := newTestProcessor(Options{FractionPrepass: true})
	tbl := sourceTable(
		map[string]string{models.ColTitle: "5 acre plot for sale", models.ColPrice: "1000"},
		map[string]string{models.ColTitle: "Number of plots: 3", models.ColPrice: "1000"},
		map[string]string{models.ColTitle: "half an acre prime land"},
	)

	out, err := p.Process(tbl)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0, 0.5}, acreages(out))

	assert.Equal(t, []string{
		models.ColTitle, models.ColDescription, models.ColPropertyDetails,
		models.ColPriceKES, models.ColPricePeriod,
		models.ColSize, models.ColAcreage, models.ColPricePerAcre,
	}, out.Columns)
	assert.Equal(t, "200", out.Rows[0].Field(models.ColPricePerAcre))
	assert.Equal(t, "", out.Rows[1].Field(models.ColPricePerAcre))
}

func TestProcessPreservesOrder(t *testing.T) {
	p := newTestProcessor(Options{FractionPrepass: true})
	tbl := sourceTable(
		map[string]string{models.ColTitle: "3 acres"},
		map[string]string{models.ColTitle: "Bungalow"},
		map[string]string{models.ColTitle: "1/4 acre"},
		map[string]string{models.ColTitle: "650 / acre"},
		map[string]string{models.ColTitle: "2 ha"},
	)

	out, err := p.Process(tbl)
	require.NoError(t, err)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, "3 acres", out.Rows[0].Field(models.ColTitle))
	assert.Equal(t, "1/4 acre", out.Rows[1].Field(models.ColTitle))
	assert.Equal(t, "2 ha", out.Rows[2].Field(models.ColTitle))
	assert.InDelta(t, 4.942, out.Rows[2].Acreage, 1e-9)
}

func TestProcessPrepassCanonicalisesSize(t *testing.T) {
	tbl := func() *models.Table {
		return sourceTable(map[string]string{models.ColTitle: "1/8th acre in Juja"})
	}

	out, err := newTestProcessor(Options{FractionPrepass: true}).Process(tbl())
	require.NoError(t, err)
	assert.Equal(t, "1/8 acre", out.Rows[0].Field(models.ColSize))
	assert.Equal(t, 0.125, out.Rows[0].Acreage)

	out, err = newTestProcessor(Options{}).Process(tbl())
	require.NoError(t, err)
	assert.Equal(t, "1/8th acre", out.Rows[0].Field(models.ColSize))
	assert.Equal(t, 0.125, out.Rows[0].Acreage)
}

func TestProcessIsIdempotent(t *testing.T) {
	p := newTestProcessor(Options{FractionPrepass: true})
	first, err := p.Process(sourceTable(
		map[string]string{models.ColTitle: "5 acre plot for sale", models.ColPrice: "KSh 1,000,000"},
		map[string]string{models.ColTitle: "Lovely 1/8th acre", models.ColPrice: "400000", models.ColPricePeriod: "per Acre"},
		map[string]string{models.ColDescription: "Plot 50 by 100 ft", models.ColPrice: "750000"},
		map[string]string{models.ColTitle: "Number of plots: 3"},
	))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, storage.WriteTable(&buf, first))
	firstCSV := buf.String()

	reread, err := storage.ReadTableFrom(&buf)
	require.NoError(t, err)
	second, err := p.Process(reread)
	require.NoError(t, err)

	var again bytes.Buffer
	require.NoError(t, storage.WriteTable(&again, second))
	assert.Equal(t, firstCSV, again.String())
	assert.Equal(t, acreages(first), acreages(second))
}

func TestProcessStructuralFailure(t *testing.T) {
	p := newTestProcessor(Options{})
	tbl := models.NewTable(
		[]string{models.ColTitle, models.ColDescription, models.ColPropertyDetails, models.ColPrice},
		[]*models.Listing{listing("5 acres", "", "")},
	)

	out, err := p.Process(tbl)
	assert.Nil(t, out)
	require.Error(t, err)

	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "reconcile", se.Stage)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestProcessLeavesInputUntouched(t *testing.T) {
	tbl := sourceTable(
		map[string]string{models.ColTitle: "5 acre plot", models.ColPrice: "1000"},
		map[string]string{models.ColTitle: "Bungalow"},
	)

	_, err := newTestProcessor(Options{}).Process(tbl)
	require.NoError(t, err)
	assert.Equal(t, sourceColumns, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "1000", tbl.Rows[0].Field(models.ColPrice))
	assert.Equal(t, "", tbl.Rows[0].Field(models.ColSize))
	assert.Equal(t, 0.0, tbl.Rows[0].Acreage)

	// A failure in a late stage must not leave earlier drops behind.
	broken := models.NewTable(
		[]string{models.ColTitle, models.ColDescription, models.ColPropertyDetails, models.ColPrice},
		[]*models.Listing{listing("5 acres", "", ""), listing("Bungalow", "", "")},
	)
	out, err := newTestProcessor(Options{}).Process(broken)
	require.Error(t, err)
	assert.Nil(t, out)
	require.Len(t, broken.Rows, 2)
	assert.False(t, broken.HasColumn(models.ColSize))
	assert.Equal(t, "", broken.Rows[0].Size)
}

func TestProcessNilTable(t *testing.T) {
	_, err := newTestProcessor(Options{}).Process(nil)
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "match", se.Stage)
}

func TestProcessWithLocations(t *testing.T) {
	p := newTestProcessor(Options{ExtractLocations: true})
	tbl := sourceTable(map[string]string{models.ColTitle: "2 acres"})
	tbl.AddColumn(models.ColRegionName)
	tbl.AddColumn(models.ColTimeOnJiji)
	tbl.Rows[0].SetField(models.ColRegionName, "Ruiru,Kiambu")
	tbl.Rows[0].SetField(models.ColTimeOnJiji, "2y 3m")

	out, err := p.Process(tbl)
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Kiambu", out.Rows[0].County)
	assert.Equal(t, "2.25", out.Rows[0].Field(models.ColYearsOnJiji))
	assert.False(t, out.HasColumn(models.ColTimeOnJiji))
}
