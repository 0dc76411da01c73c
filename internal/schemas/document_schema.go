package schemas

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the JSON Schema for the bare (unwrapped) document. It
// checks structural shape only; visibility semantics are enforced by the
// normalizer.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Document",
  "type": "object",
  "required": ["basics"],
  "properties": {
    "basics": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "label": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "website": {"type": "string"},
        "summary": {"type": "string"},
        "location": {"type": "object"},
        "profiles": {"type": "array"}
      }
    },
    "work": {"type": "array"},
    "education": {"type": "array"},
    "skills": {"type": "array"},
    "languages": {"type": "array"},
    "certifications": {"type": "array"},
    "projects": {"type": "array"},
    "interests": {"type": "array"},
    "references": {"type": "array"},
    "sectionVisibility": {
      "type": "object",
      "additionalProperties": {"type": "boolean"}
    }
  }
}`

// CheckDocumentSchema validates raw document JSON against the embedded
// document schema and returns one message per violation. The messages are
// advisory; the normalizer accepts and repairs shapes the schema rejects.
func CheckDocumentSchema(jsonContent []byte) []string {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("schema check failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		messages = append(messages, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return messages
}
