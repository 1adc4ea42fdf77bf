package grammar

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		text     string
		want     string
		category Category
	}{
		{"5 acre plot for sale", "5 acre", CategoryNumeric},
		{"Prime half an acre in Ruiru", "half an acre", CategoryWritten},
		{"1/8th acre plot", "1/8th acre", CategoryFraction},
		{"1/4 acre", "1/4 acre", CategoryFraction},
		{"1/2-acre near tarmac", "1/2-acre", CategoryFraction},
		{"50x100 ft plot", "50x100 ft", CategoryDimensional},
		{"40 by 80 plot", "40 by 80", CategoryDimensional},
		{"0.05 ha", "0.05 ha", CategoryHectare},
		{"2 Hectares of farmland", "2 Hectares", CategoryHectare},
		{"27000-Acre ranch", "27000-Acre", CategoryHyphenated},
		{"1,500 acres ranch", "1,500 acres", CategoryNumeric},
		{"27000 acres", "27000 acres", CategoryNumeric},
		{"going for 650 / acre", "650 / acre", CategoryPricePerAcre},
		{"slightly more than a quarter acre", "slightly more than a quarter acre", CategoryQualitative},
		{"50 ft * 100 ft", "50 ft * 100 ft", CategoryFeetByFeet},
		{"Number of plots: 2", "Number of plots: 2", CategoryPlotCount},
		{"Twenty five acres", "Twenty five acres", CategoryWritten},
		{"one hundred acres", "one hundred acres", CategoryWritten},
		{"an eighth acre", "eighth acre", CategoryWritten},
		{"Plot 50 by 100 on 1/4 acre", "50 by 100", CategoryDimensional},
		{"1 / 2 acre plot", "1 / 2 acre", CategoryFraction},
		{"3 / 4th acre", "3 / 4th acre", CategoryFraction},
		{"only .5 acres left", ".5 acres", CategoryNumeric},
		{".25 ha", ".25 ha", CategoryHectare},
		{"1.5 acres", "1.5 acres", CategoryNumeric},
		{"Plot no.5 acres", "5 acres", CategoryNumeric},
	}

	for _, tt := range tests {
		got, ok := Find(tt.text)
		require.True(t, ok, "Find(%q) found nothing", tt.text)
		assert.Equal(t, tt.want, got.Text, "Find(%q)", tt.text)
		assert.Equal(t, tt.category, got.Category, "Find(%q) category", tt.text)
		assert.Equal(t, tt.want, tt.text[got.Start:got.End])
	}
}

func TestFindNothing(t *testing.T) {
	for _, text := range []string{"", "spacious maisonette", "someone acre", "three bedroom house"} {
		_, ok := Find(text)
		assert.False(t, ok, "Find(%q) should not match", text)
	}
}

func TestParseWritten(t *testing.T) {
	tests := []struct {
		words string
		want  float64
	}{
		{"quarter", 0.25},
		{"half", 0.5},
		{"eighth", 0.125},
		{"two", 2},
		{"nineteen", 19},
		{"Fifty", 50},
		{"twenty five", 25},
		{"ninety-nine", 99},
		{"one hundred", 100},
		{"two hundred and forty", 240},
		{"three hundred fifty two", 352},
	}

	for _, tt := range tests {
		got, ok := ParseWritten(tt.words)
		if !ok || got != tt.want {
			t.Errorf("ParseWritten(%q) = %v, %v; want %v", tt.words, got, ok, tt.want)
		}
	}

	for _, words := range []string{"", "hundred", "zero", "twenty twenty", "five twenty"} {
		if _, ok := ParseWritten(words); ok {
			t.Errorf("ParseWritten(%q) should fail", words)
		}
	}
}

func TestFractionLiteralsAgreeWithDivision(t *testing.T) {
	for _, lit := range FractionLiterals {
		parts := strings.Split(lit.Key, "/")
		require.Len(t, parts, 2)
		num, err := strconv.ParseFloat(parts[0], 64)
		require.NoError(t, err)
		den, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		assert.InDelta(t, num/den, lit.Value, 1e-4, "literal %s", lit.Key)
	}
}

func TestLookupFraction(t *testing.T) {
	v, ok := LookupFraction("1/4")
	assert.True(t, ok)
	assert.Equal(t, 0.25, v)

	v, ok = LookupFraction("3/4 acre")
	assert.True(t, ok)
	assert.Equal(t, 0.75, v)

	_, ok = LookupFraction("11/20")
	assert.False(t, ok)

	_, ok = LookupFraction("50x100")
	assert.False(t, ok)
}

func TestCanonicalFraction(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1/8th acre", "1/8 acre"},
		{"1/2-acre", "1/2 acre"},
		{"3/4acres", "3/4 acre"},
		{"01/4 Acre", "1/4 acre"},
		{"1/4 acre", "1/4 acre"},
		{"1 / 2 acre", "1/2 acre"},
	}
	for _, tt := range tests {
		got, ok := CanonicalFraction(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, ok := CanonicalFraction("5 acres")
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber("1,500.5")
	require.NoError(t, err)
	assert.Equal(t, 1500.5, v)

	_, err = ParseNumber("abc")
	assert.Error(t, err)
}
