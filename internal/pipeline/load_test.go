package pipeline

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/importer"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestLoadDocument_BareDocument(t *testing.T) {
	doc, err := LoadDocument([]byte(`{"basics": {"name": "Jane"}, "work": []}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane", doc.Basics.Name)
	assert.NotNil(t, doc.Work)
}

func TestLoadDocument_InvalidInput(t *testing.T) {
	_, err := LoadDocument([]byte(`"just a string"`))
	require.Error(t, err)

	var invalidErr *normalize.InvalidInputError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestLoadEnvelope_BareDocumentGetsDefaults(t *testing.T) {
	env, err := LoadEnvelope([]byte(`{"basics": {"name": "Jane"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane", env.Basics.Name)
	assert.Equal(t, schemas.CurrentSchemaVersion, env.Extensions.SchemaVersion)
	assert.Equal(t, types.BackupFormat, env.Extensions.Backup.Format)
	assert.True(t, env.Extensions.Visibility.Sections["work"])
}

func TestLoadEnvelope_ExtendedKeepsDeclaredVersion(t *testing.T) {
	raw := `{
		"basics": {"name": "Jane"},
		"extensions": {"schemaVersion": "1.1.0"}
	}`

	env, err := LoadEnvelope([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "1.1.0", env.Extensions.SchemaVersion)
	// Missing substructures are defaulted, not left nil.
	assert.NotNil(t, env.Extensions.Visibility.Sections)
	assert.NotNil(t, env.Extensions.Visibility.Items)
	assert.NotEmpty(t, env.Extensions.Backup.Format)
	assert.NotEmpty(t, env.Extensions.ExtendedSchemaRef)
	assert.NotNil(t, env.Extensions.Summaries)
}

func TestLoadEnvelope_ExtendedPreservesDeclaredState(t *testing.T) {
	raw := `{
		"basics": {"name": "Jane"},
		"extensions": {
			"schemaVersion": "1.2.0",
			"visibility": {"sections": {"work": false}, "items": {}, "subItems": {}},
			"backup": {"timestamp": "2024-06-01T00:00:00Z", "format": "extended", "editCount": 7}
		}
	}`

	env, err := LoadEnvelope([]byte(raw))
	require.NoError(t, err)

	assert.False(t, env.Extensions.Visibility.Sections["work"])
	assert.Equal(t, 7, env.Extensions.Backup.EditCount)
	assert.Equal(t, "2024-06-01T00:00:00Z", env.Extensions.Backup.Timestamp)
}

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// End to end: foreign archive in, enveloped export out, validation clean.
func TestImportExportValidateRoundTrip(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"Profile.csv":   "First Name,Last Name,Headline\nJohn,Doe,Engineer",
		"Positions.csv": "Company Name,Title,Started On\nAcme,Engineer,Jan 2020",
		"Skills.csv":    "Name,Endorsement Count\nGo,55",
	})

	imported := importer.ImportArchive(archive, nil)
	require.False(t, imported.HasErrors)

	env := schemas.NewEnvelope(imported.Document)
	exported, err := json.Marshal(env)
	require.NoError(t, err)

	result := schemas.ValidateEnvelopeBytes(exported)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)

	reloaded, err := LoadEnvelope(exported)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", reloaded.Basics.Name)
	require.Len(t, reloaded.Work, 1)
	assert.Equal(t, "2020-01-01", reloaded.Work[0].StartDate)
	assert.Equal(t, "Expert", reloaded.Skills[0].Level)
}
