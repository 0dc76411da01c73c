package types

// Envelope is the versioned wrapper persisted around a Document at rest. The
// document fields are serialized inline with an extensions block alongside
// them. Envelopes exist only at serialization boundaries (save, export, load,
// import); the live editor works with the unwrapped Document.
type Envelope struct {
	Document
	Extensions Extensions `json:"extensions"`
}

// Extensions carries schema versioning, visibility state, and backup
// metadata for an enveloped document.
type Extensions struct {
	SchemaVersion     string             `json:"schemaVersion"`
	ExtendedSchemaRef string             `json:"extendedSchemaRef"`
	Visibility        VisibilityState    `json:"visibility"`
	Backup            BackupMetadata     `json:"backup"`
	NonConformingData *NonConformingData `json:"nonConformingData,omitempty"`
	AppMetadata       map[string]any     `json:"appMetadata,omitempty"`
	Summaries         []Summary          `json:"summaries"`
	ActiveSummaryID   string             `json:"activeSummaryId,omitempty"`
}

// VisibilityState holds the visibility flags for sections, items, and
// sub-items keyed by their identifiers.
type VisibilityState struct {
	Sections map[string]bool `json:"sections"`
	Items    map[string]bool `json:"items"`
	SubItems map[string]bool `json:"subItems"`
}

// BackupFormat is the fixed format tag stamped into every backup.
const BackupFormat = "extended"

// BackupMetadata describes when and how an envelope was produced.
type BackupMetadata struct {
	Timestamp           string `json:"timestamp"`
	Format              string `json:"format"`
	PreservesVisibility bool   `json:"preservesVisibility"`
	PreservesAppData    bool   `json:"preservesAppData"`
	EditCount           int    `json:"editCount"`
}

// Summary is one stored summary variant for the document.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// NonConformingData is the side-channel bucket for import data that could
// not be mapped into the document. It is created only when an import
// encounters unmappable data, surfaced to the user for manual
// reconciliation, and never silently discarded.
type NonConformingData struct {
	ParsingErrors []string       `json:"parsingErrors"`
	InvalidFields []InvalidField `json:"invalidFields"`
	RawText       string         `json:"rawText,omitempty"`
	OriginalData  any            `json:"originalData,omitempty"`
}

// InvalidField records a single field that failed to map during import.
type InvalidField struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Value   string `json:"value"`
}

// IsEmpty reports whether the bucket holds nothing worth preserving.
func (n *NonConformingData) IsEmpty() bool {
	if n == nil {
		return true
	}
	return len(n.ParsingErrors) == 0 && len(n.InvalidFields) == 0 &&
		n.RawText == "" && n.OriginalData == nil
}
