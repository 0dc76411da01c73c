// Package pipeline wires the import, normalization, and versioning stages
// together at the serialization boundaries: raw JSON in, normalized
// document or envelope out.
package pipeline

import (
	"encoding/json"

	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// LoadDocument accepts either a bare document or an enveloped one and
// returns the normalized document. Envelope detection happens before
// normalization; the extensions block, when present, is ignored here.
func LoadDocument(data []byte) (*types.Document, error) {
	return normalize.Bytes(data)
}

// LoadEnvelope accepts either a bare or an enveloped document and returns a
// full envelope with a normalized document inside. A bare document receives
// default extensions; an enveloped one keeps its declared extensions, with
// missing visibility and backup substructures defaulted.
func LoadEnvelope(data []byte) (*types.Envelope, error) {
	doc, err := normalize.Bytes(data)
	if err != nil {
		return nil, err
	}

	if !schemas.IsExtendedFormat(data) {
		return schemas.NewEnvelope(doc), nil
	}

	ext, err := decodeExtensions(data)
	if err != nil {
		return nil, err
	}
	applyExtensionDefaults(ext)

	return &types.Envelope{Document: *doc, Extensions: *ext}, nil
}

// decodeExtensions pulls the extensions block out of an enveloped payload.
func decodeExtensions(data []byte) (*types.Extensions, error) {
	var wrapper struct {
		Extensions types.Extensions `json:"extensions"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, &normalize.InvalidInputError{Message: "extensions block is malformed"}
	}
	return &wrapper.Extensions, nil
}

// applyExtensionDefaults fills the recoverable holes validation only warns
// about: missing visibility maps and missing backup metadata.
func applyExtensionDefaults(ext *types.Extensions) {
	defaults := schemas.DefaultExtensions()

	if ext.ExtendedSchemaRef == "" {
		ext.ExtendedSchemaRef = defaults.ExtendedSchemaRef
	}
	if ext.Visibility.Sections == nil {
		ext.Visibility.Sections = defaults.Visibility.Sections
	}
	if ext.Visibility.Items == nil {
		ext.Visibility.Items = defaults.Visibility.Items
	}
	if ext.Visibility.SubItems == nil {
		ext.Visibility.SubItems = defaults.Visibility.SubItems
	}
	if ext.Backup.Format == "" {
		ext.Backup = defaults.Backup
	}
	if ext.Summaries == nil {
		ext.Summaries = []types.Summary{}
	}
}
