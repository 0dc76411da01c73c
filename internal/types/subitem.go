package types

import (
	"encoding/json"
	"fmt"
)

// SubItemKind discriminates the two wire representations of a sub-item.
type SubItemKind int

const (
	// SubItemPlain is a bare string sub-item; visible by definition.
	SubItemPlain SubItemKind = iota
	// SubItemAnnotated is the structured form carrying an explicit
	// visibility flag.
	SubItemAnnotated
)

// SubItem is a nested leaf value within an item: a highlight, course,
// keyword, or role. It may appear on the wire either as a bare string or as
// an object with content and visibility. Both representations are visible by
// default; the original representation is preserved on re-serialization
// unless Normalize is called.
type SubItem struct {
	Kind    SubItemKind
	Content string
	Visible bool
}

// PlainSubItem builds the bare-string form.
func PlainSubItem(text string) SubItem {
	return SubItem{Kind: SubItemPlain, Content: text, Visible: true}
}

// AnnotatedSubItem builds the structured form with an explicit flag.
func AnnotatedSubItem(text string, visible bool) SubItem {
	return SubItem{Kind: SubItemAnnotated, Content: text, Visible: visible}
}

// Text returns the sub-item's textual content regardless of representation.
func (s SubItem) Text() string {
	return s.Content
}

// IsVisible reports the sub-item's effective visibility. A plain sub-item is
// always visible.
func (s SubItem) IsVisible() bool {
	if s.Kind == SubItemPlain {
		return true
	}
	return s.Visible
}

// Normalize converts the sub-item to the annotated form with an explicit
// visibility flag. Plain sub-items become visible annotated ones.
func (s SubItem) Normalize() SubItem {
	return AnnotatedSubItem(s.Content, s.IsVisible())
}

// subItemWire is the structured JSON form. Both "content" and "name" are
// accepted as the text field; "content" wins when both are present.
type subItemWire struct {
	Content *string `json:"content,omitempty"`
	Name    *string `json:"name,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
}

// UnmarshalJSON accepts either a JSON string or an object with
// content|name and an optional visible flag. Any other JSON value is an
// error; callers doing tolerant decoding should use SubItemFromValue.
func (s *SubItem) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = PlainSubItem(text)
		return nil
	}

	var wire subItemWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("sub-item must be a string or object: %w", err)
	}

	content := ""
	switch {
	case wire.Content != nil:
		content = *wire.Content
	case wire.Name != nil:
		content = *wire.Name
	}

	// Absent flag means visible; only literal false hides.
	visible := wire.Visible == nil || *wire.Visible
	*s = AnnotatedSubItem(content, visible)
	return nil
}

// MarshalJSON preserves the representation the sub-item was built with.
func (s SubItem) MarshalJSON() ([]byte, error) {
	if s.Kind == SubItemPlain {
		return json.Marshal(s.Content)
	}
	visible := s.Visible
	return json.Marshal(subItemWire{Content: &s.Content, Visible: &visible})
}

// SubItemFromValue converts an already-decoded JSON value (string or map)
// into a SubItem. The second return is false when the value has neither
// representation.
func SubItemFromValue(v any) (SubItem, bool) {
	switch val := v.(type) {
	case string:
		return PlainSubItem(val), true
	case map[string]any:
		content := ""
		if c, ok := val["content"].(string); ok {
			content = c
		} else if n, ok := val["name"].(string); ok {
			content = n
		}
		visible := true
		if flag, ok := val["visible"].(bool); ok {
			visible = flag
		}
		return AnnotatedSubItem(content, visible), true
	default:
		return SubItem{}, false
	}
}
