package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultExtensions builds the extensions block for a brand-new document:
// current schema version, all sections visible, empty item and sub-item
// visibility maps, backup metadata stamped with the current time, zero edit
// count, and no summaries.
func DefaultExtensions() types.Extensions {
	sections := make(map[string]bool, len(types.SectionNames))
	for _, name := range types.SectionNames {
		sections[name] = true
	}

	return types.Extensions{
		SchemaVersion:     CurrentSchemaVersion,
		ExtendedSchemaRef: ExtendedSchemaRef,
		Visibility: types.VisibilityState{
			Sections: sections,
			Items:    map[string]bool{},
			SubItems: map[string]bool{},
		},
		Backup: types.BackupMetadata{
			Timestamp:           time.Now().UTC().Format(time.RFC3339),
			Format:              types.BackupFormat,
			PreservesVisibility: true,
			PreservesAppData:    true,
			EditCount:           0,
		},
		Summaries: []types.Summary{},
	}
}

// NewEnvelope wraps a document with default extensions for export or
// backup. The document's own non-conforming bucket, if any, is lifted into
// the extensions block so it survives the round trip at rest.
func NewEnvelope(doc *types.Document) *types.Envelope {
	env := &types.Envelope{
		Document:   *doc,
		Extensions: DefaultExtensions(),
	}
	if !doc.NonConforming.IsEmpty() {
		env.Extensions.NonConformingData = doc.NonConforming
	}
	return env
}

// NewSummary builds a stored summary variant with a fresh identifier.
func NewSummary(name, content string) types.Summary {
	return types.Summary{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
