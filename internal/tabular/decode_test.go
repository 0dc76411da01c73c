package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLine_SimpleFields(t *testing.T) {
	fields := DecodeLine("John,Doe,Software Engineer")

	assert.Equal(t, []string{"John", "Doe", "Software Engineer"}, fields)
}

func TestDecodeLine_QuotedFieldWithComma(t *testing.T) {
	fields := DecodeLine(`"John, Jr.",Doe`)

	assert.Equal(t, []string{"John, Jr.", "Doe"}, fields)
}

func TestDecodeLine_EscapedQuotes(t *testing.T) {
	fields := DecodeLine(`"Senior ""Tech Lead"" Developer",Acme`)

	assert.Equal(t, []string{`Senior "Tech Lead" Developer`, "Acme"}, fields)
}

func TestDecodeLine_TrimsWhitespace(t *testing.T) {
	fields := DecodeLine("  John , Doe ,  Engineer")

	assert.Equal(t, []string{"John", "Doe", "Engineer"}, fields)
}

func TestDecodeLine_TrailingEmptyField(t *testing.T) {
	fields := DecodeLine("John,Doe,")

	assert.Equal(t, []string{"John", "Doe", ""}, fields)
}

func TestDecodeLine_EmptyLine(t *testing.T) {
	fields := DecodeLine("")

	assert.Equal(t, []string{""}, fields)
}

func TestDecodeLine_UnterminatedQuote(t *testing.T) {
	// Best-effort: treated as if the quote closed at end of line.
	fields := DecodeLine(`John,"Doe`)

	assert.Equal(t, []string{"John", "Doe"}, fields)
}

func TestDecodeLine_QuotedEmptyField(t *testing.T) {
	fields := DecodeLine(`"",Doe`)

	assert.Equal(t, []string{"", "Doe"}, fields)
}

func TestEncodeLine_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"plain", []string{"John", "Doe", "Engineer"}},
		{"embedded comma", []string{"John, Jr.", "Doe"}},
		{"embedded quotes", []string{`Senior "Tech Lead" Developer`, "Acme"}},
		{"trailing empty", []string{"John", ""}},
		{"mixed", []string{`a "b", c`, "", "plain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := DecodeLine(EncodeLine(tt.fields))
			assert.Equal(t, tt.fields, decoded)
		})
	}
}
