package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"land-acreage/gazetteer"
	"land-acreage/models"
)

var locationColumns = []string{
	models.ColRegionName, models.ColRegionParentName, models.ColListingBy, models.ColTimeOnJiji,
}

func locationTable(rows ...[4]string) *models.Table {
	ls := make([]*models.Listing, len(rows))
	for i, r := range rows {
		fields := make(map[string]string, len(locationColumns))
		for j, c := range locationColumns {
			fields[c] = r[j]
		}
		ls[i] = models.NewListing(fields)
	}
	return models.NewTable(locationColumns, ls)
}

func TestLocationExtractor(t *testing.T) {
	e := NewLocationExtractor(newTestLogger(), gazetteer.New())
	tbl := locationTable(
		[4]string{"Ruiru,Kiambu", "", "", "2y 3m"},
		[4]string{"", "Syokimau", "", "5y"},
		[4]string{"Atlantis", "", "", ""},
	)

	out, err := e.Extract(tbl)
	require.NoError(t, err)
	require.Len(t, out.Rows, 3)

	assert.Equal(t, "Kiambu", out.Rows[0].Field(models.ColCounty))
	require.NotNil(t, out.Rows[0].CountyDensity)
	assert.Equal(t, 952.0, *out.Rows[0].CountyDensity)
	assert.Equal(t, "952", out.Rows[0].Field(models.ColCountyDensity))
	assert.Equal(t, 2.25, out.Rows[0].YearsOnJiji)

	assert.Equal(t, "Machakos", out.Rows[1].County)
	assert.Equal(t, "5", out.Rows[1].Field(models.ColYearsOnJiji))

	assert.Equal(t, "", out.Rows[2].County)
	assert.Nil(t, out.Rows[2].CountyDensity)
	assert.Equal(t, "", out.Rows[2].Field(models.ColCountyDensity))
	assert.Equal(t, "0", out.Rows[2].Field(models.ColYearsOnJiji))

	assert.False(t, out.HasColumn(models.ColTimeOnJiji))
	assert.True(t, out.HasColumn(models.ColYearsOnJiji))
}

func TestLocationExtractorRerun(t *testing.T) {
	e := NewLocationExtractor(newTestLogger(), gazetteer.New())
	out, err := e.Extract(locationTable([4]string{"Ruiru,Kiambu", "", "", "1y 6m"}))
	require.NoError(t, err)

	again, err := e.Extract(out)
	require.NoError(t, err)
	assert.Equal(t, "1.5", again.Rows[0].Field(models.ColYearsOnJiji))
	assert.Equal(t, 1.5, again.Rows[0].YearsOnJiji)
}

func TestLocationExtractorMissingColumns(t *testing.T) {
	e := NewLocationExtractor(newTestLogger(), gazetteer.New())

	_, err := e.Extract(models.NewTable([]string{models.ColTimeOnJiji}, nil))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = e.Extract(models.NewTable([]string{models.ColRegionName}, nil))
	assert.ErrorIs(t, err, ErrMissingColumn)
}
