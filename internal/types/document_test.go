package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidwall/gjson"
)

func TestNewDocument_AllSectionsPresentInJSON(t *testing.T) {
	data, err := json.Marshal(NewDocument())
	require.NoError(t, err)

	for _, name := range SectionNames {
		if name == SectionProfiles {
			assert.True(t, gjson.GetBytes(data, "basics.profiles").IsArray())
			continue
		}
		assert.True(t, gjson.GetBytes(data, name).IsArray(), "section %s should serialize as an array", name)
	}
	assert.True(t, gjson.GetBytes(data, "sectionVisibility.work").Bool())
	assert.False(t, gjson.GetBytes(data, "nonConformingData").Exists())
}

func TestDefaultSectionVisibility_ReturnsFreshCopy(t *testing.T) {
	a := DefaultSectionVisibility()
	a["work"] = false

	b := DefaultSectionVisibility()
	assert.True(t, b["work"])
}

func TestNonConformingData_IsEmpty(t *testing.T) {
	var nilBucket *NonConformingData
	assert.True(t, nilBucket.IsEmpty())
	assert.True(t, (&NonConformingData{}).IsEmpty())

	assert.False(t, (&NonConformingData{ParsingErrors: []string{"x"}}).IsEmpty())
	assert.False(t, (&NonConformingData{InvalidFields: []InvalidField{{Section: "skills"}}}).IsEmpty())
	assert.False(t, (&NonConformingData{RawText: "a,b"}).IsEmpty())
	assert.False(t, (&NonConformingData{OriginalData: map[string]any{}}).IsEmpty())
}
