package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

func cellWithTexts(texts ...string) *model.Cell {
	c := &model.Cell{Rect: model.NewRect(0, 0, 100, 20)}
	for _, t := range texts {
		c.Elements = append(c.Elements, model.Element{Text: t})
	}
	return c
}

func TestParseReceivedDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7/03/2019", "2019-03-07"},
		{"17/11/2015", "2015-11-17"},
		{"7/3/19", ""},   // single-digit month, two-digit year
		{"7/3/2019", ""}, // single-digit month
		{"2019-03-07", ""},
		{"not a date", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseReceivedDate(cellWithTexts(tt.in))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReceivedDateNilCell(t *testing.T) {
	assert.Equal(t, "", parseReceivedDate(nil))
}

func TestJoinTextCollapsesWhitespace(t *testing.T) {
	got := joinText(cellWithTexts("10  Smith", "St\t ", " Hawker"))
	assert.Equal(t, "10 Smith St Hawker", got)
}

func TestJoinTextNormalizesNonBreakingSpace(t *testing.T) {
	got := joinText(cellWithTexts("10\u00a0Smith St"))
	assert.Equal(t, "10 Smith St", got)
}

func TestJoinTextNilCell(t *testing.T) {
	assert.Equal(t, "", joinText(nil))
}

func TestConcatTextNoSeparator(t *testing.T) {
	got := concatText(cellWithTexts("690/", "006/", "15"))
	assert.Equal(t, "690/006/15", got)
}

func TestApplicationNumberFormat(t *testing.T) {
	valid := []string{"690/006/15", "1/1/1", "690/123/2015"}
	for _, v := range valid {
		assert.True(t, applicationNumberFormat.MatchString(v), v)
	}

	invalid := []string{"", "690/006", "690-006-15", "a690/006/15", "690/006/15b", "690//15"}
	for _, v := range invalid {
		assert.False(t, applicationNumberFormat.MatchString(v), v)
	}
}
