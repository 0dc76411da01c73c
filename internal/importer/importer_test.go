package importer

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip assembles an in-memory ZIP archive from filename to content.
func buildZip(t *testing.T, files map[string]string) []byte {
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

func TestImportArchive_RecognizedExport(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Profile.csv":   "First Name,Last Name,Headline,Summary,Email Address,Geo Location\nJohn,Doe,Software Engineer,Builds things,john@example.com,Berlin",
		"Positions.csv": "Company Name,Title,Description,Location,Started On,Finished On\nAcme,Engineer,Built systems,Berlin,Jan 2020,Mar 2022",
		"Education.csv": "School Name,Degree Name,Field Of Study,Start Date,End Date\nMIT,BSc,Computer Science,2014,2018",
	})

	result := ImportArchive(data, nil)

	assert.False(t, result.HasErrors)
	assert.Empty(t, result.ValidationErrors)
	assert.Len(t, result.ProcessedFiles, 3)

	doc := result.Document
	assert.Equal(t, "John Doe", doc.Basics.Name)
	assert.Equal(t, "Software Engineer", doc.Basics.Label)
	assert.Equal(t, "Builds things", doc.Basics.Summary)
	assert.Equal(t, "john@example.com", doc.Basics.Email)
	assert.Equal(t, "Berlin", doc.Basics.Location.City)

	require.Len(t, doc.Work, 1)
	assert.Equal(t, "Acme", doc.Work[0].Company)
	assert.Equal(t, "Engineer", doc.Work[0].Position)
	assert.Equal(t, "2020-01-01", doc.Work[0].StartDate)
	assert.Equal(t, "2022-03-01", doc.Work[0].EndDate)
	assert.True(t, doc.Work[0].Visible)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "MIT", doc.Education[0].Institution)
	assert.Equal(t, "BSc", doc.Education[0].Degree)
	assert.Equal(t, "Computer Science", doc.Education[0].Field)
	assert.Equal(t, "2014-01-01", doc.Education[0].StartDate)
	assert.Equal(t, "2018-01-01", doc.Education[0].EndDate)
}

func TestImportArchive_NoRecognizedFiles(t *testing.T) {
	data := buildZip(t, map[string]string{
		"random.txt":  "hello",
		"another.csv": "a,b\n1,2",
	})

	result := ImportArchive(data, nil)

	assert.True(t, result.HasErrors)
	assert.Empty(t, result.ProcessedFiles)
	require.Len(t, result.ValidationErrors, 1)
	assert.Contains(t, result.ValidationErrors[0], "does not appear to contain")
}

func TestImportArchive_CorruptArchive(t *testing.T) {
	result := ImportArchive([]byte("this is not a zip"), nil)

	assert.True(t, result.HasErrors)
	assert.Empty(t, result.ProcessedFiles)
	require.Len(t, result.ValidationErrors, 1)
	assert.Contains(t, result.ValidationErrors[0], "failed to extract archive")
	// The document is still usable, just empty.
	require.NotNil(t, result.Document)
	assert.Empty(t, result.Document.Work)
}

func TestImportArchive_ExtractFuncFailure(t *testing.T) {
	failing := func(data []byte) (map[string][]byte, error) {
		return nil, errors.New("container is corrupt")
	}

	result := ImportArchive(nil, failing)

	assert.True(t, result.HasErrors)
	assert.Contains(t, result.ValidationErrors[0], "container is corrupt")
}

func TestImportArchive_CaseInsensitiveRouting(t *testing.T) {
	data := buildZip(t, map[string]string{
		"POSITIONS.CSV": "Company Name,Title\nAcme,Engineer",
	})

	result := ImportArchive(data, nil)

	assert.False(t, result.HasErrors)
	assert.Equal(t, []string{"POSITIONS.CSV"}, result.ProcessedFiles)
	assert.Len(t, result.Document.Work, 1)
}

func TestImportArchive_UnrecognizedMembersPreserved(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Positions.csv": "Company Name,Title\nAcme,Engineer",
		"Contacts.csv":  "Name\nSomeone",
	})

	result := ImportArchive(data, nil)

	assert.False(t, result.HasErrors)
	require.NotNil(t, result.Document.NonConforming)
	require.Len(t, result.Document.NonConforming.ParsingErrors, 1)
	assert.Contains(t, result.Document.NonConforming.ParsingErrors[0], "Contacts.csv")
}

func TestImportArchive_SkillsLevelsAndFiltering(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Skills.csv": "Name,Endorsement Count\nGo,55\nSQL,20\nDocker,7\nBash,1\n,99",
	})

	result := ImportArchive(data, nil)

	assert.False(t, result.HasErrors)
	doc := result.Document
	require.Len(t, doc.Skills, 4)
	assert.Equal(t, "Expert", doc.Skills[0].Level)
	assert.Equal(t, "Advanced", doc.Skills[1].Level)
	assert.Equal(t, "Intermediate", doc.Skills[2].Level)
	assert.Equal(t, "Beginner", doc.Skills[3].Level)

	// The nameless row lands in the non-conforming bucket.
	require.NotNil(t, doc.NonConforming)
	require.Len(t, doc.NonConforming.InvalidFields, 1)
	assert.Equal(t, "skills", doc.NonConforming.InvalidFields[0].Section)
	assert.Equal(t, "99", doc.NonConforming.InvalidFields[0].Value)
}

func TestImportArchive_LanguagesDefaultFluency(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Languages.csv": "Name,Proficiency\nEnglish,Professional working proficiency\nGerman,",
	})

	result := ImportArchive(data, nil)

	doc := result.Document
	require.Len(t, doc.Languages, 2)
	assert.Equal(t, "Professional working proficiency", doc.Languages[0].Fluency)
	assert.Equal(t, "Native speaker", doc.Languages[1].Fluency)
}

func TestImportArchive_CertificationsKeepOnlyIssueDate(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Certifications.csv": "Name,Authority,Started On,Finished On,Url\nCKA,CNCF,Jan 2021,Jan 2024,https://example.com/cka",
	})

	result := ImportArchive(data, nil)

	doc := result.Document
	require.Len(t, doc.Certifications, 1)
	cert := doc.Certifications[0]
	assert.Equal(t, "CKA", cert.Name)
	assert.Equal(t, "CNCF", cert.Issuer)
	assert.Equal(t, "2021-01-01", cert.Date)
	assert.Equal(t, "https://example.com/cka", cert.URL)
	assert.True(t, cert.Visible)
}

func TestImportArchive_PartialProfileDoesNotOverwriteWithEmpty(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Profile.csv": "First Name,Last Name,Headline\nJohn,,",
	})

	result := ImportArchive(data, nil)

	doc := result.Document
	assert.Equal(t, "John", doc.Basics.Name)
	assert.Equal(t, "", doc.Basics.Label)
	assert.Equal(t, "", doc.Basics.Summary)
}

func TestExtractZip_SkipsDirectories(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, err := w.Create("folder/")
	require.NoError(t, err)
	f, err := w.Create("folder/Skills.csv")
	require.NoError(t, err)
	_, err = f.Write([]byte("Name\nGo"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	files, err := ExtractZip(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Contains(t, files, "folder/Skills.csv")
}
