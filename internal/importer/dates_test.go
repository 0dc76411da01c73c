package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate_MonthYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jan 2020", "2020-01-01"},
		{"Sep 2021", "2021-09-01"},
		{"Dec 1999", "1999-12-01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}

func TestNormalizeDate_BareYear(t *testing.T) {
	assert.Equal(t, "2020-01-01", NormalizeDate("2020"))
	assert.Equal(t, "1987-01-01", NormalizeDate("1987"))
}

func TestNormalizeDate_GeneralParserFallback(t *testing.T) {
	assert.Equal(t, "2020-05-10", NormalizeDate("2020-05-10"))
	assert.Equal(t, "2019-03-01", NormalizeDate("March 2019"))
	assert.Equal(t, "2018-07-04", NormalizeDate("Jul 4, 2018"))
}

func TestNormalizeDate_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeDate(""))
	assert.Equal(t, "", NormalizeDate("   "))
}

func TestNormalizeDate_UnparseableNeverErrors(t *testing.T) {
	assert.Equal(t, "", NormalizeDate("not a date"))
	assert.Equal(t, "", NormalizeDate("Xyz 2020"))
	assert.Equal(t, "", NormalizeDate("13/45/9999"))
}

func TestNormalizeDate_TrimsInput(t *testing.T) {
	assert.Equal(t, "2020-01-01", NormalizeDate("  Jan 2020  "))
}
